package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holiday-poster-funnel/internal/catalog"
	"holiday-poster-funnel/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STRIPE_SECRET_KEY", "")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, "orders", cfg.OrdersDir)
	assert.False(t, cfg.CheckoutEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")
	t.Setenv("STRIPE_PRICE_ID_PRINT", "price_print")
	t.Setenv("CHECKOUT_SUCCESS_URL", "https://shop.example/thanks")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.CheckoutEnabled())
	assert.Equal(t, "price_print", cfg.PriceIDPrint)
	assert.Equal(t, "https://shop.example/thanks", cfg.CheckoutSuccessURL)
}

func TestPriceIDMapping(t *testing.T) {
	cfg := &config.Config{
		PriceIDDigital: "price_d",
		PriceIDPrint:   "price_p",
		PriceIDFramed:  "price_f",
	}

	assert.Equal(t, "price_d", cfg.PriceID(catalog.TierDigital))
	assert.Equal(t, "price_p", cfg.PriceID(catalog.TierPrint))
	assert.Equal(t, "price_f", cfg.PriceID(catalog.TierFramed))
	assert.Equal(t, "", cfg.PriceID(catalog.Tier("platinum")))
}
