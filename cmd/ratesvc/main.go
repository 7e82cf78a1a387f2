package main

import (
	"context"
	"fmt"
	"net"
	gohttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/yama6a/zip-tax-rates/internal/app/loader"
	"github.com/yama6a/zip-tax-rates/internal/app/lookup"
	"github.com/yama6a/zip-tax-rates/internal/pkg/config"
	"github.com/yama6a/zip-tax-rates/internal/pkg/dataset"
	"github.com/yama6a/zip-tax-rates/internal/pkg/http"
	"github.com/yama6a/zip-tax-rates/internal/pkg/store"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	noErr(err)

	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	loggerConfig.DisableStacktrace = true
	logger, err := loggerConfig.Build()
	noErr(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("rates service failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run loads the dataset, and only then binds the listener and serves until ctx is done.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (err error) {
	kv, closeStore, err := openStore(ctx, cfg, logger.Named("store"))
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeStore()) }()

	rows, err := dataset.Open(cfg.DatasetPath, cfg.DatasetHeader)
	if err != nil {
		return err
	}
	if _, err := loader.NewLoader(kv, cfg.StoreName, logger.Named("loader")).Load(ctx, rows); err != nil {
		return fmt.Errorf("failed to load rates: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTPAddr, err)
	}

	svc := lookup.NewService(kv, cfg.StoreName, cfg.StoreTimeout, logger.Named("lookup"))
	server := lookup.NewServer(lookup.NewRouter(svc, logger.Named("http")), cfg.MaxConnections, cfg.ShutdownTimeout, logger.Named("server"))

	return server.Serve(ctx, ln)
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := pgxpool.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		pgStore := store.NewPostgres(pool, logger)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("using postgres state store")
		return pgStore, func() error { pool.Close(); return nil }, nil

	case config.BackendMemory:
		logger.Info("using in-memory state store")
		return store.NewMemoryStore(logger), noop, nil

	default:
		// Shared HTTP client for all sidecar calls.
		baseHTTPClient := &gohttp.Client{Timeout: cfg.StoreTimeout}
		httpClient := http.NewClient(baseHTTPClient, cfg.StoreTimeout)
		logger.Info("using dapr state store", zap.String("sidecar", cfg.DaprBaseURL()))
		return store.NewDaprStore(httpClient, cfg.DaprBaseURL(), logger), func() error {
			baseHTTPClient.CloseIdleConnections()
			return nil
		}, nil
	}
}

func noErr(err error) {
	if err != nil {
		fmt.Printf("failed to initialize something important: %v\n", err)
		panic(err)
	}
}
