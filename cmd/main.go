package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/config"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/dto"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/service"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/transport"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flightprovider/dataset"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/pricing"
	httptransport "github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/transport/http"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// @title           Flight Ticket Pricing Service API
// @version         0.0.1
// @description     flight-ticket-pricing-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		defer cancel()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	endpts, err := makeEndpoints(ctx, &cfg, redisClient)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init endpoints", slog.String("error", err.Error()))
		return
	}

	var limiter httptransport.Limiter
	if cfg.Pricing.RateLimitRPS > 0 {
		limiter = redis_rate.NewLimiter(redisClient)
	}

	router := transport.MakeHTTPRouter(&cfg, endpts, limiter)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (endpoints.Endpoints, error) {
	// init validator
	if err := dto.InitValidator(); err != nil {
		return endpoints.Endpoints{}, fmt.Errorf("failed to init validator: %w", err)
	}

	// flight dataset
	provider, err := dataset.LoadFiles(flightprovider.FlightProviderConfig{
		RoutesFile: cfg.Dataset.RoutesFile,
		PricesFile: cfg.Dataset.PricesFile,
	})
	if err != nil {
		return endpoints.Endpoints{}, fmt.Errorf("failed to load flight dataset: %w", err)
	}

	calculator, err := makeCalculator(cfg.Pricing.Tiers)
	if err != nil {
		return endpoints.Endpoints{}, fmt.Errorf("failed to init pricing tiers: %w", err)
	}

	// cache, left nil when disabled so the service reads the dataset directly
	var cache service.FlightCacher
	if cfg.Redis.CacheEnabled {
		cache = flight.NewFlightCache(redisClient)
	}

	pricingService := service.NewPricingService(provider, cache, calculator,
		cfg.Dataset.CacheExpiration, cfg.Dataset.LockTimeout)

	slog.InfoContext(ctx, "pricing service ready",
		slog.Bool("cache_enabled", cfg.Redis.CacheEnabled),
		slog.Int("rate_limit_rps", cfg.Pricing.RateLimitRPS))

	return endpoints.Endpoints{
		PricingEndpoint: endpoints.MakePricingEndpoint(pricingService),
	}, nil
}

func makeCalculator(tiers []config.PricingTier) (pricing.Calculator, error) {
	if len(tiers) == 0 {
		return pricing.NewDefaultCalculator(), nil
	}

	pricingTiers := make([]pricing.Tier, 0, len(tiers))
	for _, tier := range tiers {
		pricingTiers = append(pricingTiers, pricing.Tier{
			MinDays:    tier.MinDays,
			Percentage: decimal.NewFromFloat(tier.Percentage),
		})
	}

	return pricing.NewTieredCalculator(pricingTiers)
}
