package config

import (
	"os"

	"github.com/joho/godotenv"

	"holiday-poster-funnel/internal/catalog"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Storage
	UploadsDir string
	OrdersDir  string

	// Hosted checkout. Everything is optional; with no secret key orders
	// are acknowledged without a payment session.
	CheckoutSecretKey  string
	CheckoutAPIBaseURL string
	PriceIDDigital     string
	PriceIDPrint       string
	PriceIDFramed      string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
}

func Load() *Config {
	// Best effort; the .env file is optional.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
		OrdersDir:  getEnv("ORDERS_DIR", "orders"),

		CheckoutSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
		CheckoutAPIBaseURL: getEnv("CHECKOUT_API_BASE_URL", ""),
		PriceIDDigital:     getEnv("STRIPE_PRICE_ID_DIGITAL", ""),
		PriceIDPrint:       getEnv("STRIPE_PRICE_ID_PRINT", ""),
		PriceIDFramed:      getEnv("STRIPE_PRICE_ID_FRAMED", ""),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", ""),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", ""),
	}
}

// CheckoutEnabled reports whether a payment secret is configured at all.
// A tier still needs a mapped price id for checkout to actually start.
func (c *Config) CheckoutEnabled() bool {
	return c.CheckoutSecretKey != ""
}

// PriceID returns the configured provider price id for a tier, empty when
// the tier is unknown or unmapped.
func (c *Config) PriceID(tier catalog.Tier) string {
	switch tier {
	case catalog.TierDigital:
		return c.PriceIDDigital
	case catalog.TierPrint:
		return c.PriceIDPrint
	case catalog.TierFramed:
		return c.PriceIDFramed
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
