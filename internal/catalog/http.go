package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"RouteMart/pkg/kit"
)

// Server serves the catalog API. Latency, when set, delays every handler
// before it touches the store, imitating a slow upstream; Sleep exists so
// tests can observe the delay without waiting it out.
type Server struct {
	Store   Store
	Log     *zap.Logger
	Latency time.Duration
	Sleep   func(ctx context.Context, d time.Duration)
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", s.list)
	r.Post("/products", s.create)
	r.Get("/products/{id}", s.get)
	r.Put("/products/{id}", s.update)
	r.Delete("/products/{id}", s.remove)

	r.Get("/products/category/{category}", s.byCategory)
	r.Get("/products/category/{category}/{subcategory}", s.byCategory)

	r.Get("/categories", s.categories)
	r.Get("/users", s.users)

	r.Get("/search", s.search)
	r.Get("/search/*", s.searchPath)

	return r
}

func (s *Server) simulateLatency(ctx context.Context) {
	if s.Latency <= 0 {
		return
	}
	sleep := s.Sleep
	if sleep == nil {
		sleep = sleepFor
	}
	sleep(ctx, s.Latency)
}

func sleepFor(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	q := r.URL.Query()
	if category := q.Get("category"); category != "" {
		products = FilterByCategory(products, category, q.Get("subcategory"))
	}
	if query := q.Get("q"); query != "" {
		products = Search(products, query)
	}
	if q.Get("featured") == "true" {
		products = Featured(products)
	}
	if field := q.Get("sort"); field != "" {
		products = SortProducts(products, field, q.Get("order"))
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	kit.WriteJSON(w, http.StatusOK, Paginate(products, page, limit))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.GetProduct(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get product failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteNotFound(w, r, id)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) byCategory(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	category := chi.URLParam(r, "category")
	subcategory := chi.URLParam(r, "subcategory")

	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, FilterByCategory(products, category, subcategory))
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	cats, err := s.Store.Categories(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list categories failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, cats)
}

func (s *Server) users(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	us, err := s.Store.ListUsers(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list users failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, us)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	query := r.URL.Query().Get("q")

	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("search failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	results := Search(products, query)
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}

// searchPath treats every path segment after /search/ as one search term,
// so /search/electronics/audio means "electronics" AND "audio". Segments
// arrive percent-encoded and are decoded individually.
func (s *Server) searchPath(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	terms := make([]string, 0)
	for _, seg := range strings.Split(chi.URLParam(r, "*"), "/") {
		if seg == "" {
			continue
		}
		if dec, err := url.PathUnescape(seg); err == nil {
			seg = dec
		}
		terms = append(terms, seg)
	}

	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("search failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	results := MultiTermSearch(products, terms)
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"terms":   terms,
		"results": results,
		"total":   len(results),
	})
}
