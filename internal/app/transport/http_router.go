package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/config"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/dto"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
// limiter may be nil, rate limiting is then disabled. Clients are keyed by the
// connection address, forwarding headers are ignored.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.Limiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.AccessLog(slog.Default()),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			httptransport.RateLimit(limiter, cfg.Pricing.RateLimitRPS),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/prices", httptransport.MakeHandlerFunc(
			endpts.PricingEndpoint.SearchPrices,
			httptransport.DecodeRequest[dto.SearchPriceRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
