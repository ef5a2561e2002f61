package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application/services"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/cache"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/objectstore"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/aquapure/internal/interfaces/rest"
	"github.com/DanielPopoola/aquapure/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/aquapure/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/aquapure/internal/worker"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the object cleanup worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), !skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")

	return cmd
}

func (a *app) serve(parent context.Context, migrate bool) error {
	cfg, logger := a.cfg, a.logger

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting aquapure service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if migrate {
		if _, err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}

	productRepo := postgres.NewProductRepository(db)
	imageRepo := postgres.NewImageRepository(db)
	pendingRepo := postgres.NewPendingDeletionRepository(db)

	storage := objectstore.NewRetryStorage(objectstore.NewClient(cfg.ObjectStorage), cfg.Retry, logger)
	if err := storage.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket %q: %w", cfg.ObjectStorage.Bucket, err)
	}

	productCache := cache.New[[]*domain.Product]("products", cfg.Cache, logger)
	imageCache := cache.New[[]*domain.ImageDocument]("image_search", cfg.Cache, logger)

	h := handlers.NewHandlers(
		services.NewQueryService(productRepo, productCache, logger),
		services.NewCreateService(productRepo, productCache, logger),
		services.NewUpdateService(productRepo, productCache, logger),
		services.NewDeleteService(productRepo, productCache, logger),
		services.NewImageService(imageRepo, storage, pendingRepo, imageCache, cfg.ObjectStorage.PresignExpiry, logger),
		db,
		handlers.Options{
			Env:            cfg.Primary.Env,
			MaxUploadBytes: cfg.ObjectStorage.MaxUploadBytes,
		},
		logger,
	)

	doc, err := rest.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	validateRequests, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		return err
	}

	handler := validateRequests(h.Routes())
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	cleanupWorker := worker.NewObjectCleanupWorker(
		pendingRepo,
		storage,
		cfg.Worker.Interval,
		cfg.Worker.BatchSize,
		logger,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cleanupWorker.Start(gctx)
		return nil
	})

	g.Go(func() error {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}
