package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/tjfontaine/bdfd-catalog/internal/server"
	"github.com/tjfontaine/bdfd-catalog/internal/telemetry"
	"github.com/tjfontaine/bdfd-catalog/pkg/catalog"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *cliOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				opts.cfg.Server.Port = port
				if err := opts.cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := newServer(opts)
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			opts.logger.Info("shutdown signal received")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				opts.logger.Error("shutdown error", slog.String("error", err.Error()))
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides server.port)")
	return cmd
}

// newServer wires catalog clients, metrics and logging into the mirror server.
func newServer(opts *cliOptions) *server.Server {
	var (
		extra   []catalog.Option
		metrics http.Handler
	)
	if opts.cfg.Telemetry.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		extra = append(extra, catalog.WithMetrics(telemetry.NewPrometheusMetrics(reg)))
		metrics = telemetry.Handler(reg)
	}

	clientOpts := opts.clientOptions(extra...)
	return server.New(server.Options{
		Port:           opts.cfg.Server.Port,
		RequestTimeout: opts.cfg.Server.RequestTimeout,
		Logger:         opts.logger,
		Functions:      catalog.NewFunctionClient(clientOpts...),
		Callbacks:      catalog.NewCallbackClient(clientOpts...),
		Metrics:        metrics,
	})
}
