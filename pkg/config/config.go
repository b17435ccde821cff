package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BaseCurrency is the currency analytics reports are normalized to.
	// ExchangeRates maps currency codes to base-relative rates; the base
	// itself is always present with rate 1.
	BaseCurrency  string
	ExchangeRates map[string]decimal.Decimal

	// EnableBurnRate switches the optional burn rate metric on.
	EnableBurnRate bool

	// RateLimit is a limiter period string such as "300-M" (300 per minute).
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "PLN")
	viper.SetDefault("EXCHANGE_RATES", "USD=0.27,EUR=0.24,UAH=11.08")
	viper.SetDefault("ENABLE_BURN_RATE", false)
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	cfg.EnableBurnRate = viper.GetBool("ENABLE_BURN_RATE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	rates, err := parseRates(viper.GetString("EXCHANGE_RATES"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXCHANGE_RATES: %w", err)
	}
	rates[cfg.BaseCurrency] = decimal.NewFromInt(1)
	cfg.ExchangeRates = rates

	return cfg, nil
}

// parseRates decodes "CODE=rate" pairs separated by commas, e.g.
// "USD=0.27,EUR=0.24".
func parseRates(raw string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	if strings.TrimSpace(raw) == "" {
		return rates, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		code, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("malformed rate for %s: %w", code, err)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("rate for %s must be positive", code)
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates, nil
}
