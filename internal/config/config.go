// Package config loads storefront settings from the environment and flags.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	Addr            string        `env:"STOREFRONT_ADDR" envDefault:":8080"`
	CatalogSource   string        `env:"STOREFRONT_CATALOG_SOURCE" envDefault:"builtin"`
	DatabaseURL     string        `env:"STOREFRONT_DATABASE_URL"`
	SeedCatalog     bool          `env:"STOREFRONT_SEED_CATALOG" envDefault:"false"`
	CheckoutDelay   time.Duration `env:"STOREFRONT_CHECKOUT_DELAY" envDefault:"1500ms"`
	CORSOrigins     []string      `env:"STOREFRONT_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel        string        `env:"STOREFRONT_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"STOREFRONT_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"STOREFRONT_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Parse reads the environment, then lets command-line flags override it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogSource, "catalog", cfg.CatalogSource, "catalog source: builtin or postgres")
	fs.BoolVar(&cfg.SeedCatalog, "seed", cfg.SeedCatalog, "write the built-in catalog to postgres before loading")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceBuiltin:
	case CatalogSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("database url is required for catalog source %q", c.CatalogSource)
		}
	default:
		return fmt.Errorf("catalog source[%s] is not valid", c.CatalogSource)
	}

	if c.SeedCatalog && c.DatabaseURL == "" {
		return fmt.Errorf("database url is required to seed the catalog")
	}
	if c.CheckoutDelay < 0 {
		return fmt.Errorf("checkout delay is negative")
	}
	return nil
}
