package site

import (
	"net/http"

	"go.uber.org/zap"

	"RouteMart/internal/auth"
	"RouteMart/internal/catalog"
	"RouteMart/pkg/kit"
)

// pages are the JSON stand-ins for the demo's rendered views. The gate
// has already vetted dashboard and profile by the time they run.
type pages struct {
	store   catalog.Store
	log     *zap.Logger
	version string
}

func (p *pages) index(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"name":    "RouteMart",
		"version": p.version,
		"routes": map[string]string{
			"products":   "/api/products",
			"categories": "/api/categories",
			"search":     "/api/search?q=",
			"login":      "/api/auth/login",
			"dashboard":  "/dashboard",
			"profile":    "/profile",
		},
		"demo": map[string]string{
			"email":    "alice@example.com",
			"password": catalog.DemoPassword,
		},
	})
}

func (p *pages) login(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"page": "login",
		"from": r.URL.Query().Get("from"),
		"hint": "POST /api/auth/login with a seed email and the demo password",
	})
}

func (p *pages) dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
		return
	}

	products, err := p.store.ListProducts(r.Context())
	if err != nil {
		p.fail(w, r, "list products", err)
		return
	}
	cats, err := p.store.Categories(r.Context())
	if err != nil {
		p.fail(w, r, "list categories", err)
		return
	}
	users, err := p.store.ListUsers(r.Context())
	if err != nil {
		p.fail(w, r, "list users", err)
		return
	}

	recent := products
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"page": "dashboard",
		"user": claims.Email,
		"sections": map[string]any{
			"analytics": map[string]int{
				"products":   len(products),
				"categories": len(cats),
				"featured":   len(catalog.Featured(products)),
			},
			"team":   users,
			"recent": recent,
		},
	})
}

func (p *pages) profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
		return
	}

	u, ok, err := p.store.GetUserByEmail(r.Context(), claims.Email)
	if err != nil {
		p.fail(w, r, "user lookup", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"email": claims.Email})
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"page": "profile",
		"user": u,
	})
}

func (p *pages) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if p.log != nil {
		p.log.Error(op+" failed", zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
