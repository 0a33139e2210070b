package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "routemart",
		Short: "A mock storefront for exercising routing, data fetching and auth flows",
		Long: `RouteMart serves a seeded in-memory product catalog behind a small
JSON API, plus the demo pages and cookie-gated sections a storefront
front end would route to. Nothing persists; every start is a fresh
catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
