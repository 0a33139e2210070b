package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"RouteMart/internal/catalog"
	"RouteMart/pkg/kit"
)

const maxBodyBytes = 1 << 20

const (
	loginLimitPerMin = 5
	limitWindow      = 60 * time.Second
)

// UserFinder is the slice of the catalog store the login flow needs.
type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (catalog.User, bool, error)
}

type Server struct {
	Log        *zap.Logger
	Users      UserFinder
	Tokens     *TokenMaker
	CookieName string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, int(limitWindow.Seconds()))

	r.With(loginLimiter.Middleware).Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)
	r.Get("/me", s.handleMe)

	return r
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string       `json:"token"`
	User  catalog.User `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req loginReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)

	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}

	u, ok, err := s.Users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("user lookup failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	// Unknown email and wrong password answer identically.
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	tok, err := s.Tokens.New(u.ID, u.Email)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("token issue", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	http.SetCookie(w, s.sessionCookie(tok, int(s.Tokens.TTL().Seconds())))

	if s.Log != nil {
		s.Log.Info("login", zap.String("user_id", u.ID), zap.String("email", u.Email))
	}
	kit.WriteJSON(w, http.StatusOK, loginResp{Token: tok, User: u})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.sessionCookie("", -1))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	tok := sessionToken(r, s.CookieName)
	if tok == "" {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
		return
	}

	claims, err := s.Tokens.Parse(tok)
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
		return
	}

	u, ok, err := s.Users.GetUserByEmail(r.Context(), claims.Email)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("user lookup failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "unknown user", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, u)
}

func (s *Server) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionToken pulls the session JWT from the cookie, falling back to a
// Bearer header for non-browser clients.
func sessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	return ""
}
