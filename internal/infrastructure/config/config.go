package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/iho/pocketledger/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Ledger
	LedgerFile      string `env:"LEDGER_FILE"        envDefault:"ledger.csv"`
	LedgerVariant   string `env:"LEDGER_VARIANT"     envDefault:"signed"`
	AllowZero       bool   `env:"LEDGER_ALLOW_ZERO"  envDefault:"true"`
	StrictLoad      bool   `env:"LEDGER_STRICT_LOAD" envDefault:"false"`
	DisplayCurrency string `env:"DISPLAY_CURRENCY"   envDefault:"USD"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SaveOnExit          bool          `env:"SAVE_ON_EXIT"          envDefault:"true"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from an optional .env file and environment variables.
// Variables already set in the environment win over the .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if _, err := domain.ParseVariant(c.LedgerVariant); err != nil {
		errs = append(errs, err)
	}

	if money.GetCurrency(c.DisplayCurrency) == nil {
		errs = append(errs, fmt.Errorf("unknown display currency %q", c.DisplayCurrency))
	}

	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, fmt.Errorf("rate limit must not be negative"))
	}

	return errors.Join(errs...)
}

// Policy builds the ledger policy from the configuration.
func (c *Config) Policy() (domain.Policy, error) {
	variant, err := domain.ParseVariant(c.LedgerVariant)
	if err != nil {
		return domain.Policy{}, err
	}

	return domain.Policy{
		Variant:    variant,
		AllowZero:  c.AllowZero,
		StrictLoad: c.StrictLoad,
	}, nil
}
