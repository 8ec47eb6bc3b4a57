package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mwhite7112/woodpantry-household/internal/api"
	"github.com/mwhite7112/woodpantry-household/internal/category"
	"github.com/mwhite7112/woodpantry-household/internal/config"
	"github.com/mwhite7112/woodpantry-household/internal/db"
	"github.com/mwhite7112/woodpantry-household/internal/logging"
	"github.com/mwhite7112/woodpantry-household/internal/scrape"
	"github.com/mwhite7112/woodpantry-household/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("household service stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	categorizer, err := loadCategorizer(cfg.CategoryKeywordsFile)
	if err != nil {
		return err
	}

	sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(sqlDB); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	fetcher := scrape.NewClient(scrape.ClientConfig{
		Timeout:    cfg.FetchTimeout,
		MaxRetries: cfg.FetchMaxRetries,
		RateLimit:  cfg.FetchRateLimit,
		UserAgent:  cfg.FetchUserAgent,
	})

	svc := service.New(db.New(sqlDB), sqlDB, cfg.ResolveThreshold,
		service.WithCategorizer(categorizer),
		service.WithFetcher(fetcher),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("household service listening", "addr", server.Addr, "resolve_threshold", cfg.ResolveThreshold)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func loadCategorizer(path string) (category.Categorizer, error) {
	if path == "" {
		return category.Default(), nil
	}
	c, err := category.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load category keywords: %w", err)
	}
	slog.Info("loaded category keywords", "file", path)
	return c, nil
}
