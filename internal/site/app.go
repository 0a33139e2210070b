// Package site assembles the RouteMart handler: the middleware stack,
// the routing rules, the mounted API and the demo pages.
package site

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"RouteMart/internal/auth"
	"RouteMart/internal/catalog"
	"RouteMart/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Deps struct {
	Store             catalog.Store
	Tokens            *auth.TokenMaker
	CookieName        string
	ProtectedPrefixes []string
	Latency           time.Duration
	Version           string
}

const readyTimeout = 1 * time.Second

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	metricsOn := httpDeps.MetricsEnabled && httpDeps.Registry != nil
	if httpDeps.MetricsEnabled && httpDeps.Registry == nil && httpDeps.Log != nil {
		httpDeps.Log.Warn("metrics enabled but Registry is nil")
	}

	setupMiddleware(r, deps, httpDeps, metricsOn)
	setupRoutes(r, deps, httpDeps, metricsOn)

	return r
}

// setupMiddleware layers the stack outermost-first. Rules run before the
// gate so a rewrite lands on its final path before any auth decision, and
// after metrics so redirects still count.
func setupMiddleware(r *chi.Mux, deps Deps, httpDeps HTTPDeps, metricsOn bool) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(httpDeps.Log))

	if metricsOn {
		metrics := kit.NewMetrics(httpDeps.Registry)
		r.Use(metrics.Middleware(httpDeps.Service, kit.ChiRoutePatternOrPath))
	}

	r.Use(defaultRules(deps.Version).Middleware)

	gate := &auth.Gate{
		Tokens:     deps.Tokens,
		CookieName: deps.CookieName,
		LoginPath:  "/login",
		Prefixes:   deps.ProtectedPrefixes,
	}
	r.Use(gate.Middleware)
}

func setupRoutes(r *chi.Mux, deps Deps, httpDeps HTTPDeps, metricsOn bool) {
	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps.Store, httpDeps.Log))

	if metricsOn {
		r.With(kit.MetricsAuth(httpDeps.MetricsToken)).Handle(
			"/metrics",
			promhttp.HandlerFor(httpDeps.Registry, promhttp.HandlerOpts{}),
		)
	}

	catalogSrv := &catalog.Server{
		Store:   deps.Store,
		Log:     httpDeps.Log,
		Latency: deps.Latency,
	}
	authSrv := &auth.Server{
		Log:        httpDeps.Log,
		Users:      deps.Store,
		Tokens:     deps.Tokens,
		CookieName: deps.CookieName,
	}

	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", authSrv.Routes())
		api.Mount("/", catalogSrv.Routes())
	})

	p := &pages{store: deps.Store, log: httpDeps.Log, version: deps.Version}
	r.Get("/", p.index)
	r.Get("/login", p.login)
	r.Get("/dashboard", p.dashboard)
	r.Get("/profile", p.profile)
}

// defaultRules mirrors a typical next.config redirect/rewrite/header block:
// a legacy listing path that moved for good, a pretty alias onto the
// product API, and blanket response headers.
func defaultRules(version string) kit.Rules {
	headers := map[string]string{"X-Frame-Options": "DENY"}
	if version != "" {
		headers["X-RouteMart-Version"] = version
	}

	return kit.Rules{
		Redirects: []kit.Redirect{
			{Source: "/old-products", Destination: "/api/products", Permanent: true},
		},
		Rewrites: []kit.Rewrite{
			{Source: "/items/*", Destination: "/api/products/*"},
		},
		Headers: []kit.HeaderRule{
			{Source: "/*", Set: headers},
		},
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(store catalog.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
