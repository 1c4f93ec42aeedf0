package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/api"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application/services"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/config"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/bank"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/events"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/metrics"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/persistence/redis"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/interfaces/rest/router"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/worker"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		Long: `Start the HTTP gateway. Settings come from GATEWAY_* environment
variables and an optional .env file, for example:

  GATEWAY_BANK_CLIENT__URL=http://localhost:8080/payments
  GATEWAY_STORE__BACKEND=postgres`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"store", cfg.Store.Backend,
		"log_level", cfg.Logger.Level,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	defer closeStore()

	m := metrics.New()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var publisher application.EventPublisher = application.NopPublisher{}
	var dispatcher *worker.EventDispatcher
	if cfg.Events.Enabled() {
		writer := events.NewKafkaWriter(cfg.Events, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("failed to close event writer", "error", err)
			}
		}()

		dispatcher = worker.NewEventDispatcher(writer, cfg.Events.BufferSize, m, logger)
		publisher = dispatcher
		go dispatcher.Start(workerCtx)
	}

	bankClient := bank.NewBankClient(cfg.BankClient, logger)
	paymentService := services.NewPaymentService(bankClient, store, publisher, m, logger)

	doc, err := api.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load openapi document: %w", err)
	}

	handler, err := router.New(handlers.NewHandlers(paymentService, logger), m, router.Options{
		RequestTimeout: cfg.Server.RequestTimeout,
		Document:       doc,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	cancelWorkers()
	if dispatcher != nil {
		<-dispatcher.Done()
	}

	logger.Info("server exited")
	return nil
}

// openStore returns the configured payment store and a function that releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (application.PaymentStore, func(), error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewPaymentRepository(db), func() { _ = db.Close() }, nil

	case config.StoreRedis:
		store, err := redis.Connect(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		logger.Warn("using in-memory payment store, payments are lost on restart")
		return memory.NewStore(), func() {}, nil
	}
}
