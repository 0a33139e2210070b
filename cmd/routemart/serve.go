package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"RouteMart/internal/auth"
	"RouteMart/internal/catalog"
	"RouteMart/internal/config"
	"RouteMart/internal/site"
	"RouteMart/pkg/kit"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the RouteMart server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is the normal case outside local dev.
			_ = godotenv.Load()

			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}

			log := kit.NewLogger("routemart", cfg.Env, cfg.LogLevel)
			defer func() { _ = log.Sync() }()

			if cfg.Env == "production" && cfg.JWTSecret == config.DefaultJWTSecret {
				log.Warn("JWT_SECRET is the built-in default; sessions are forgeable")
			}

			h, err := buildHandler(cfg, log, prometheus.NewRegistry())
			if err != nil {
				return err
			}

			log.Info("starting",
				zap.String("port", cfg.Port),
				zap.String("env", cfg.Env),
				zap.Duration("simulated_latency", cfg.SimulatedLatency),
				zap.Strings("protected_prefixes", cfg.ProtectedPrefixes),
			)

			if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
				log.Error("http server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	return cmd
}

func buildHandler(cfg config.Config, log *zap.Logger, reg *prometheus.Registry) (http.Handler, error) {
	store, err := catalog.NewMemStore()
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenMaker(cfg.JWTSecret, cfg.SessionTTL)

	h := site.NewHandler(
		site.Deps{
			Store:             store,
			Tokens:            tokens,
			CookieName:        cfg.CookieName,
			ProtectedPrefixes: cfg.ProtectedPrefixes,
			Latency:           cfg.SimulatedLatency,
			Version:           version,
		},
		site.HTTPDeps{
			Log:            log,
			Service:        "routemart",
			Registry:       reg,
			MetricsEnabled: cfg.MetricsEnabled,
			MetricsToken:   cfg.MetricsToken,
		},
	)
	return h, nil
}
