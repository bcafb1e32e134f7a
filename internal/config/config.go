package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/currency"
)

const prefix = "STOREFRONT"

type Config struct {
	CatalogURL   string        `envconfig:"CATALOG_URL" default:"https://fakestoreapi.com/products"`
	HTTPAddr     string        `envconfig:"HTTP_ADDR" default:":8080"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	Currency     string        `envconfig:"CURRENCY" default:"USD"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile      string        `envconfig:"LOG_FILE"`
}

// Load reads an optional .env file, then the STOREFRONT_* environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("envconfig.Process: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.CatalogURL == "" {
		return fmt.Errorf("catalog URL is empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout[%s] must be positive", c.FetchTimeout)
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}
	return nil
}

func (c Config) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}
