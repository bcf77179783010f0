package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the storefront server reads from the
// environment so main stays lean.
type Config struct {
	Addr string

	Cart     Cart
	Redis    Redis
	Postgres Postgres
	Catalog  Catalog
	Checkout Checkout
	Audit    Audit
}

// Cart controls the cart snapshot slot and backend selection.
type Cart struct {
	// StorageKey names the durable snapshot slot shared by every backend.
	StorageKey string
	// Backend selects the snapshot store: memory, file, redis, or postgres.
	Backend string
	// SnapshotPath is the file backend's on-disk location.
	SnapshotPath string
}

// Redis captures connection settings for the redis snapshot backend.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Postgres captures connection settings for the postgres snapshot backend.
type Postgres struct {
	URL string
}

// Catalog controls product listing behavior.
type Catalog struct {
	PageSize int
}

// Checkout controls the simulated order processing step.
type Checkout struct {
	ProcessingDelay time.Duration
}

// Audit controls the audit event sink. Empty brokers means events go to the
// structured log instead of Kafka.
type Audit struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Config from environment variables with sane defaults.
func FromEnv() Config {
	return Config{
		Addr: getString("STOREFRONT_ADDR", ":8080"),
		Cart: Cart{
			StorageKey:   getString("CART_STORAGE_KEY", "luxury-pearl-cart"),
			Backend:      getString("CART_BACKEND", "file"),
			SnapshotPath: getString("CART_SNAPSHOT_PATH", "cart-snapshot.json"),
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: Postgres{
			URL: os.Getenv("POSTGRES_URL"),
		},
		Catalog: Catalog{
			PageSize: getInt("CATALOG_PAGE_SIZE", 8),
		},
		Checkout: Checkout{
			ProcessingDelay: getDuration("CHECKOUT_PROCESSING_DELAY", 800*time.Millisecond),
		},
		Audit: Audit{
			Brokers: getStrings("AUDIT_BROKERS"),
			Topic:   getString("AUDIT_TOPIC", "storefront.audit"),
		},
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getStrings(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
