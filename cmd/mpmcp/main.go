package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"mpmcp/internal/infra/api"
	"mpmcp/internal/infra/auth"
	"mpmcp/internal/infra/config"
	"mpmcp/internal/infra/gateway"
	"mpmcp/internal/infra/telemetry"
)

type serverOptions struct {
	metricsAddr string
	debug       bool
	logger      *zap.Logger
}

// applyFlagOverrides lets explicitly set flags win over environment values.
func applyFlagOverrides(flags *pflag.FlagSet, opts *serverOptions, cfg *config.Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "metrics-addr":
			cfg.MetricsAddr = opts.metricsAddr
		case "debug":
			cfg.Verbose = opts.debug
		}
	})
}

func main() {
	opts := serverOptions{
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "mpmcp",
		Short: "MercadoPago MCP server over stdio",
		Long: "mpmcp exposes MercadoPago customer, payment-method and documentation tools " +
			"over the Model Context Protocol. Credentials come from the CLIENT_ID and " +
			"CLIENT_SECRET environment variables; DEBUG enables verbose request logging.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg := zap.NewProductionConfig()
			log, err := cfg.Build()
			if err != nil {
				return err
			}
			opts.logger = log
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd.Flags(), &opts, &cfg)

			if cfg.Verbose {
				zcfg := zap.NewProductionConfig()
				zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
				log, err := zcfg.Build()
				if err != nil {
					return err
				}
				_ = opts.logger.Sync()
				opts.logger = log
			}

			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			metrics := telemetry.NewPrometheusMetrics(nil)

			provider := auth.NewProvider(cfg.TokenURL, cfg.Credentials, opts.logger, auth.ProviderOptions{
				Metrics: metrics,
			})
			store := auth.NewStore(provider, opts.logger)
			client := api.NewClient(store, opts.logger, api.ClientOptions{
				Verbose:     cfg.Verbose,
				Metrics:     metrics,
				BaseURL:     cfg.APIBaseURL,
				DocsBaseURL: cfg.DocsBaseURL,
			})

			gw, err := gateway.New(client, opts.logger, gateway.Options{Metrics: metrics})
			if err != nil {
				return err
			}

			if cfg.MetricsAddr != "" {
				go func() {
					if err := telemetry.StartHTTPServer(ctx, cfg.MetricsAddr, nil, opts.logger); err != nil {
						opts.logger.Error("observability server failed", zap.Error(err))
					}
				}()
			}

			err = gw.Run(ctx)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}

	root.PersistentFlags().StringVar(&opts.metricsAddr, "metrics-addr", "", "listen address for /metrics and /healthz (empty disables)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "verbose request logging (same as DEBUG=1)")

	if err := root.Execute(); err != nil {
		opts.logger.Fatal("command failed", zap.Error(err))
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signals)
	}()

	return ctx, cancel
}
