// Command server runs the lustre storefront: catalog browsing, the cart
// state container with durable snapshots, and the simulated checkout flow.
// main wires high-level dependencies and keeps the server lifecycle small;
// business logic lives in the internal services packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"lustre/internal/cart/container"
	carthandler "lustre/internal/cart/handler"
	cartmetrics "lustre/internal/cart/metrics"
	cartservice "lustre/internal/cart/service"
	"lustre/internal/cart/snapshot"
	"lustre/internal/catalog"
	cataloghandler "lustre/internal/catalog/handler"
	"lustre/internal/checkout"
	checkouthandler "lustre/internal/checkout/handler"
	checkoutmetrics "lustre/internal/checkout/metrics"
	httpapi "lustre/internal/http"
	"lustre/internal/platform/config"
	"lustre/internal/platform/httpserver"
	"lustre/internal/platform/logger"
	"lustre/internal/platform/metrics"
	platformpg "lustre/internal/platform/postgres"
	platformredis "lustre/internal/platform/redis"
	"lustre/pkg/platform/audit"
	auditkafka "lustre/pkg/platform/audit/kafka"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher, closePublisher, err := newAuditPublisher(cfg.Audit, log)
	if err != nil {
		return err
	}
	defer closePublisher()

	backend, err := newCartBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.close()

	cartMetrics := cartmetrics.New()
	cart := container.New(ctx,
		container.WithSnapshots(backend.store),
		container.WithLogger(log),
		container.WithPersistFailureHook(cartMetrics.IncrementPersistFailure),
	)
	cartSvc := cartservice.New(cart,
		cartservice.WithLogger(log),
		cartservice.WithMetrics(cartMetrics),
		cartservice.WithAuditPublisher(publisher),
	)

	catalogSvc := catalog.NewService(cfg.Catalog.PageSize)

	checkoutSvc := checkout.New(cartSvc, cfg.Checkout.ProcessingDelay, log,
		checkout.WithMetrics(checkoutmetrics.New()),
		checkout.WithAuditPublisher(publisher),
	)

	router := httpapi.NewRouter(log, metrics.New(), backend.health,
		carthandler.New(cartSvc, log),
		cataloghandler.New(catalogSvc, log),
		checkouthandler.New(checkoutSvc, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting lustre storefront",
		"addr", cfg.Addr,
		"cart_backend", cfg.Cart.Backend,
		"cart_storage_key", cfg.Cart.StorageKey,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// cartBackend bundles a snapshot store with the health probe and resource
// closer of whatever it runs on. health is nil for backends with nothing to
// probe; close is always callable.
type cartBackend struct {
	store  snapshot.Store
	health httpapi.HealthCheck
	close  func()
}

// newCartBackend selects the cart persistence backend from configuration.
func newCartBackend(ctx context.Context, cfg config.Config) (*cartBackend, error) {
	noop := func() {}
	switch cfg.Cart.Backend {
	case "memory":
		return &cartBackend{store: snapshot.NewMemoryStore(), close: noop}, nil

	case "file":
		store := snapshot.NewFileStore(".", cfg.Cart.StorageKey)
		if cfg.Cart.SnapshotPath != "" {
			store = snapshot.NewFileStoreAt(cfg.Cart.SnapshotPath)
		}
		return &cartBackend{store: store, close: noop}, nil

	case "redis":
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis backend: %w", err)
		}
		if client == nil {
			return nil, fmt.Errorf("redis backend selected but REDIS_URL is empty")
		}
		return &cartBackend{
			store:  snapshot.NewRedisStore(client.Client, cfg.Cart.StorageKey),
			health: client.Health,
			close:  func() { _ = client.Close() },
		}, nil

	case "postgres":
		pool, err := platformpg.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("postgres backend: %w", err)
		}
		if pool == nil {
			return nil, fmt.Errorf("postgres backend selected but POSTGRES_URL is empty")
		}
		store := snapshot.NewPostgresStore(pool, cfg.Cart.StorageKey)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &cartBackend{store: store, health: pool.Ping, close: pool.Close}, nil

	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.Cart.Backend)
	}
}

// newAuditPublisher picks Kafka when brokers are configured, otherwise the
// structured log sink.
func newAuditPublisher(cfg config.Audit, log *slog.Logger) (audit.Publisher, func(), error) {
	if len(cfg.Brokers) == 0 {
		return audit.NewLogPublisher(log), func() {}, nil
	}
	pub, err := auditkafka.New(cfg.Brokers, cfg.Topic, log)
	if err != nil {
		return nil, nil, fmt.Errorf("audit publisher: %w", err)
	}
	closer := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pub.Close(ctx); err != nil {
			log.Warn("audit publisher close failed", "error", err)
		}
	}
	return pub, closer, nil
}
