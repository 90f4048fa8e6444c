package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	_ "property-management/docs"
	"property-management/internal/api"
	"property-management/internal/auth"
	"property-management/internal/config"
	"property-management/internal/logger"
	"property-management/internal/manager"
	"property-management/internal/messaging"
	"property-management/internal/metrics"
	"property-management/internal/schema"
	"property-management/internal/storage"
)

func newServeCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	log := logger.Default()
	metrics.Init()
	auth.SetSecret(cfg.Auth.JWTSecret)

	db, err := storage.NewStorage(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("PostgreSQL connected")

	var (
		broker manager.Broker
		conn   *amqp.Connection
	)
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := messaging.NewRabbitClient(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			return err
		}
		defer rabbit.Close()
		broker, conn = rabbit, rabbit.GetConnection()
		log.WithField("queue", rabbit.QueueName()).Info("RabbitMQ connected")
	}

	am := manager.NewAuditManager(db, broker, conn, cfg.Workers)
	if err := am.Start(); err != nil {
		return err
	}
	defer am.Shutdown()

	validator, err := schema.NewDefault()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewAPI(db, am, validator, cfg).Router(),
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("starting API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("HTTP shutdown error")
	}

	log.Info("graceful shutdown complete")
	return nil
}
