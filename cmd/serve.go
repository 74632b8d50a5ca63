package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wgomg/sumario/internal/api"
	"github.com/wgomg/sumario/internal/metrics"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP summarizer service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.App.ServerPort = port
			}

			logger := newLogger(cfg)
			defer logger.Close()

			logger.Info(nil, "Starting Summarizer Service")
			logger.Info(nil, "Environment: %s", cfg.App.Env)
			logger.Info(nil, "Log level: %s", cfg.App.LogLevel)
			logger.Info(nil, "Default mode: %s, sentences: %d", cfg.Summary.Mode, cfg.Summary.Sentences)

			m := metrics.New()
			service, err := newDigestService(cfg, logger, m)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			api.RegisterRoutes(mux, api.NewHandler(logger, service, m))

			server := &http.Server{
				Addr:              "0.0.0.0:" + cfg.App.ServerPort,
				Handler:           api.WithRequestID(mux, m),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(nil, "Shutdown error: %v", err)
				}
			}()

			logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
			logger.Info(nil, "Endpoints:")
			logger.Info(nil, "  GET  /health")
			logger.Info(nil, "  GET  /metrics")
			logger.Info(nil, "  POST /summarize")
			logger.Info(nil, "  POST /highlight")

			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides APP_SERVER_PORT)")
	return cmd
}
