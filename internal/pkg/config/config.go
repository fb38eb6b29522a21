package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Console ConsoleConfig
	API     APIConfig
}

// ConsoleConfig configures cmd/console.
type ConsoleConfig struct {
	APIURL string `env:"CATALOG_API_URL, default=http://localhost:8000"`
	// Timeout bounds each API round trip. Zero means no timeout.
	Timeout time.Duration `env:"CATALOG_API_TIMEOUT, default=0s"`
	// MetricsAddr serves /metrics when non-empty, e.g. ":9100".
	MetricsAddr string `env:"METRICS_ADDR"`
}

// APIConfig configures cmd/catalog-api.
type APIConfig struct {
	Port      string        `env:"PORT,       default=8000"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=30m"`
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads an optional .env file and then the environment using go-envconfig.
// Variables already set in the environment win over .env entries.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadFrom builds a Config from vars alone. Missing keys take their defaults.
func LoadFrom(ctx context.Context, vars map[string]string) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(vars),
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
