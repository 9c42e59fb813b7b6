// Package main starts the storefront HTTP service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rentwear/storefront/internal/cart"
	"github.com/rentwear/storefront/internal/catalog"
	"github.com/rentwear/storefront/internal/checkout"
	"github.com/rentwear/storefront/internal/config"
	"github.com/rentwear/storefront/internal/domain"
	"github.com/rentwear/storefront/internal/httpapi"
	"github.com/rentwear/storefront/internal/logging"
	"github.com/rentwear/storefront/internal/repository"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("storefront stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	products, err := loadProducts(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("loadProducts: %w", err)
	}

	store, err := catalog.New(products)
	if err != nil {
		return fmt.Errorf("catalog.New: %w", err)
	}

	notifier := logging.NewNotifier(logger.Named("notice"))
	shoppingCart := cart.New(cart.WithNotifier(notifier))
	orders := checkout.New(shoppingCart,
		checkout.WithDelay(cfg.CheckoutDelay),
		checkout.WithNotifier(notifier))

	api := httpapi.New(store, shoppingCart, orders,
		httpapi.WithLogger(logger.Named("http")),
		httpapi.WithCORSOrigins(cfg.CORSOrigins))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening",
			zap.String("addr", cfg.Addr),
			zap.String("catalog_source", cfg.CatalogSource),
			zap.Int("products", store.Len()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}
	orders.Wait()

	return nil
}

func loadProducts(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]domain.Product, error) {
	if cfg.CatalogSource == config.CatalogSourceBuiltin && !cfg.SeedCatalog {
		return catalog.Builtin(), nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	// the catalog is read once, the pool is not needed afterwards
	defer pool.Close()

	repo := repository.NewProducts(pool)

	if cfg.SeedCatalog {
		n, err := repo.SeedProducts(ctx, catalog.Builtin())
		if err != nil {
			return nil, fmt.Errorf("repo.SeedProducts: %w", err)
		}
		logger.Info("catalog seeded", zap.Int("products", n))
	}

	if cfg.CatalogSource != config.CatalogSourcePostgres {
		return catalog.Builtin(), nil
	}

	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListProducts: %w", err)
	}
	return products, nil
}
