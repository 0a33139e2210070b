package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"RouteMart/pkg/kit"
)

const maxBodyBytes = 1 << 20

// createReq uses pointers so an absent field and a zero value stay
// distinguishable: price 0 and stock 0 are legal, a missing price is not.
type createReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Featured    *bool    `json:"featured"`
}

func (req createReq) validate() (missing, invalid []string) {
	blank := func(sp *string) bool { return sp == nil || strings.TrimSpace(*sp) == "" }

	if blank(req.Name) {
		missing = append(missing, "name")
	}
	if blank(req.Description) {
		missing = append(missing, "description")
	}
	if req.Price == nil {
		missing = append(missing, "price")
	} else if *req.Price < 0 {
		invalid = append(invalid, "price")
	}
	if blank(req.Category) {
		missing = append(missing, "category")
	}
	if req.Stock == nil {
		missing = append(missing, "stock")
	} else if *req.Stock < 0 {
		invalid = append(invalid, "stock")
	}
	return missing, invalid
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req createReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	missing, invalid := req.validate()
	if len(missing) > 0 || len(invalid) > 0 {
		details := map[string]any{}
		if len(missing) > 0 {
			details["missing"] = missing
		}
		if len(invalid) > 0 {
			details["invalid"] = invalid
		}
		kit.WriteError(w, r, http.StatusBadRequest, "validation failed", details)
		return
	}

	p := Product{
		Name:        strings.TrimSpace(*req.Name),
		Description: strings.TrimSpace(*req.Description),
		Price:       *req.Price,
		Category:    strings.TrimSpace(*req.Category),
		Stock:       *req.Stock,
	}
	if req.Subcategory != nil {
		p.Subcategory = strings.TrimSpace(*req.Subcategory)
	}
	if req.Image != nil {
		p.Image = strings.TrimSpace(*req.Image)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}

	created, err := s.Store.InsertProduct(r.Context(), p)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("create product failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if s.Log != nil {
		s.Log.Info("product created", zap.String("id", created.ID), zap.String("name", created.Name))
	}
	kit.WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var patch ProductPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	var invalid []string
	if patch.Price != nil && *patch.Price < 0 {
		invalid = append(invalid, "price")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		invalid = append(invalid, "stock")
	}
	if len(invalid) > 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "validation failed", map[string]any{"invalid": invalid})
		return
	}

	p, ok, err := s.Store.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("update product failed", zap.Error(err), zap.String("id", id))
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

// remove answers with the deleted record so clients can show what went away.
func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	s.simulateLatency(r.Context())

	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.DeleteProduct(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("delete product failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteNotFound(w, r, id)
		return
	}

	if s.Log != nil {
		s.Log.Info("product deleted", zap.String("id", id))
	}
	kit.WriteJSON(w, http.StatusOK, p)
}
