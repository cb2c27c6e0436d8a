package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tjfontaine/bdfd-catalog/internal/config"
	"github.com/tjfontaine/bdfd-catalog/internal/pkg/safehttp"
	"github.com/tjfontaine/bdfd-catalog/internal/telemetry"
	"github.com/tjfontaine/bdfd-catalog/pkg/catalog"
)

const serviceName = "bdfd-catalog"

type cliOptions struct {
	configPath string
	baseURL    string
	jsonOutput bool

	cfg      *config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{}

	root := &cobra.Command{
		Use:           "bdfd",
		Short:         "Query the BDFD function and callback catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.shutdown == nil {
				return nil
			}
			return opts.shutdown(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "config file path")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "catalog API root (overrides catalog.base_url)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")

	root.AddCommand(
		newDomainCmd(catalog.DomainFunction, &opts),
		newDomainCmd(catalog.DomainCallback, &opts),
		newServeCmd(&opts),
	)

	return root
}

// setup loads .env and config, then builds the logger and tracer every
// subcommand shares.
func (o *cliOptions) setup(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.baseURL != "" {
		cfg.Catalog.BaseURL = o.baseURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	o.cfg = cfg
	o.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)

	if cfg.Telemetry.Tracing {
		shutdown, err := telemetry.InitTracer(serviceName, cmd.ErrOrStderr(), o.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize tracer: %w", err)
		}
		o.shutdown = shutdown
	}
	return nil
}

// clientOptions turns config into catalog client options.
func (o *cliOptions) clientOptions(extra ...catalog.Option) []catalog.Option {
	var base http.RoundTripper = http.DefaultTransport
	if o.cfg.Catalog.BlockPrivateNetworks {
		base = safehttp.NewTransport(0)
	}
	httpClient := &http.Client{
		Timeout:   o.cfg.Catalog.Timeout,
		Transport: otelhttp.NewTransport(base),
	}
	opts := []catalog.Option{
		catalog.WithBaseURL(o.cfg.Catalog.BaseURL),
		catalog.WithHTTPClient(httpClient),
		catalog.WithUserAgent(o.cfg.Catalog.UserAgent),
		catalog.WithLogger(o.logger),
	}
	return append(opts, extra...)
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
