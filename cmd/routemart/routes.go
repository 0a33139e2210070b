package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"RouteMart/internal/config"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the routing table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			h, err := buildHandler(cfg, zap.NewNop(), prometheus.NewRegistry())
			if err != nil {
				return err
			}

			routes, ok := h.(chi.Routes)
			if !ok {
				return fmt.Errorf("handler is not a chi router")
			}

			return chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
				route = strings.ReplaceAll(route, "/*/", "/")
				fmt.Printf("%-7s %s\n", method, route)
				return nil
			})
		},
	}
}
