package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "luxury-pearl-cart", cfg.Cart.StorageKey)
	assert.Equal(t, "file", cfg.Cart.Backend)
	assert.Equal(t, 8, cfg.Catalog.PageSize)
	assert.Equal(t, 800*time.Millisecond, cfg.Checkout.ProcessingDelay)
	assert.Empty(t, cfg.Audit.Brokers)
	assert.Equal(t, "storefront.audit", cfg.Audit.Topic)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_ADDR", ":9090")
	t.Setenv("CART_STORAGE_KEY", "test-cart")
	t.Setenv("CART_BACKEND", "redis")
	t.Setenv("CATALOG_PAGE_SIZE", "12")
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "50ms")
	t.Setenv("AUDIT_BROKERS", "broker-1:9092, broker-2:9092")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "test-cart", cfg.Cart.StorageKey)
	assert.Equal(t, "redis", cfg.Cart.Backend)
	assert.Equal(t, 12, cfg.Catalog.PageSize)
	assert.Equal(t, 50*time.Millisecond, cfg.Checkout.ProcessingDelay)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Audit.Brokers)
}

func TestFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CATALOG_PAGE_SIZE", "not-a-number")
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "soon")

	cfg := FromEnv()

	assert.Equal(t, 8, cfg.Catalog.PageSize)
	assert.Equal(t, 800*time.Millisecond, cfg.Checkout.ProcessingDelay)
}
