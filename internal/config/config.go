package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/unitecon/internal/backend"
	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/store"
)

// Config represents the calculator configuration.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Backend  backend.Config
	Store    store.Config
	Defaults DefaultsConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"30"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// DefaultsConfig holds the calculator's starting assumptions.
type DefaultsConfig struct {
	SubscriptionPrice  float64 `env:"DEFAULT_SUBSCRIPTION_PRICE"   envDefault:"990"`
	Currency           string  `env:"DEFAULT_CURRENCY"             envDefault:"RUB"`
	USDExchangeRate    float64 `env:"DEFAULT_USD_EXCHANGE_RATE"    envDefault:"95"`
	CreditsInPlan      int     `env:"DEFAULT_CREDITS_IN_PLAN"      envDefault:"3000"`
	RequestsInPlan     int     `env:"DEFAULT_REQUESTS_IN_PLAN"     envDefault:"500"`
	OverheadPercent    float64 `env:"DEFAULT_OVERHEAD_PERCENT"     envDefault:"15"`
	AvgInputTokens     int     `env:"DEFAULT_AVG_INPUT_TOKENS"     envDefault:"500"`
	AvgOutputTokens    int     `env:"DEFAULT_AVG_OUTPUT_TOKENS"    envDefault:"1000"`
	AvgDurationSeconds float64 `env:"DEFAULT_AVG_DURATION_SECONDS" envDefault:"5"`
	PricingMode        string  `env:"DEFAULT_PRICING_MODE"         envDefault:"base"`
}

// Inputs returns the default calculator inputs for entityID.
func (d *DefaultsConfig) Inputs(entityID string) domain.CalculationInputs {
	return domain.CalculationInputs{
		EntityID: entityID,
		Usage: domain.UsageAssumptions{
			AvgInputTokens:     d.AvgInputTokens,
			AvgOutputTokens:    d.AvgOutputTokens,
			AvgDurationSeconds: d.AvgDurationSeconds,
			PricingMode:        domain.PricingMode(d.PricingMode),
		},
		Plan: domain.PlanAssumptions{
			SubscriptionPrice: d.SubscriptionPrice,
			Currency:          domain.Currency(d.Currency),
			USDExchangeRate:   d.USDExchangeRate,
			CreditsInPlan:     d.CreditsInPlan,
			RequestsInPlan:    d.RequestsInPlan,
			OverheadPercent:   d.OverheadPercent,
		},
	}
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*DefaultsConfig

	Backend *backend.Config
	Store   *store.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:            dig.Out{},
		ServerConfig:   &cfg.Server,
		CORSConfig:     &cfg.CORS,
		DefaultsConfig: &cfg.Defaults,
		Backend:        &cfg.Backend,
		Store:          &cfg.Store,
	}
}
