package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Dataset  Dataset    `mapstructure:",squash"`
	Pricing  Pricing    `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr         string        `mapstructure:"REDIS_ADDR"`
	Password     string        `mapstructure:"REDIS_PASSWORD"`
	DB           int           `mapstructure:"REDIS_DB"`
	Timeout      time.Duration `mapstructure:"REDIS_TIMEOUT"`
	CacheEnabled bool          `mapstructure:"CACHE_ENABLED"`
}

// Dataset points at the two flat files the flights are joined from.
type Dataset struct {
	RoutesFile      string        `mapstructure:"DATASET_ROUTES_FILE"`
	PricesFile      string        `mapstructure:"DATASET_PRICES_FILE"`
	CacheExpiration time.Duration `mapstructure:"DATASET_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"DATASET_LOCK_TIMEOUT"`
}

// PricingTier maps to pricing.Tier, percentage is of the base price (80 means 80%).
type PricingTier struct {
	MinDays    int64   `mapstructure:"min_days" json:"min_days"`
	Percentage float64 `mapstructure:"percentage" json:"percentage"`
}

// Pricing holds the discount policy. An empty tier list keeps the default curve.
type Pricing struct {
	Tiers        []PricingTier `mapstructure:"PRICING_TIERS"`
	RateLimitRPS int           `mapstructure:"PRICING_RATE_LIMIT"`
}
