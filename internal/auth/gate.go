package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"RouteMart/pkg/kit"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFromContext returns the session claims the gate stored for a
// protected request.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey).(Claims)
	return c, ok
}

// Gate guards a fixed list of path prefixes. Requests without a valid
// session are bounced to the login page, or get a 401 when the client
// asks for JSON; everything outside the prefixes passes through as-is.
type Gate struct {
	Tokens     *TokenMaker
	CookieName string
	LoginPath  string
	Prefixes   []string
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.protected(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		tok := sessionToken(r, g.CookieName)
		if tok == "" {
			g.deny(w, r, "missing token")
			return
		}

		claims, err := g.Tokens.Parse(tok)
		if err != nil || claims.UserID == "" {
			g.deny(w, r, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// protected matches whole path segments, so /dashboard and /dashboard/team
// are guarded while /dashboard-public is not.
func (g *Gate) protected(path string) bool {
	for _, p := range g.Prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func (g *Gate) deny(w http.ResponseWriter, r *http.Request, msg string) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		kit.WriteError(w, r, http.StatusUnauthorized, msg, nil)
		return
	}

	login := g.LoginPath
	if login == "" {
		login = "/login"
	}
	// The original destination rides along so login can send the user back.
	http.Redirect(w, r, login+"?from="+url.QueryEscape(r.URL.RequestURI()), http.StatusTemporaryRedirect)
}
