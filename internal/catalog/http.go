package catalog

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MedSupply/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes returns the product routes, meant to be mounted at /products.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Post("/", s.add)
	r.Get("/{id}", s.get)
	r.Patch("/{id}", s.update)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := Filter{Category: q.Get("category")}

	var errs []kit.FieldError
	f.MinPrice, errs = parseBound(q, "min", errs)
	f.MaxPrice, errs = parseBound(q, "max", errs)
	if len(errs) > 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid query", errs)
		return
	}

	products, err := s.Store.List(r.Context(), f)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "failed to fetch products", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get product failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "failed to fetch product", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var in InsertProduct
	if err := kit.DecodeJSON(w, r, &in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	if errs := ValidateInsert(in); len(errs) > 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid data", errs)
		return
	}

	p, err := s.Store.Add(r.Context(), in)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("add product failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "failed to add product", nil)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch ProductPatch
	if err := kit.DecodeJSON(w, r, &patch); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	if errs := ValidatePatch(patch); len(errs) > 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid data", errs)
		return
	}

	p, ok, err := s.Store.Update(r.Context(), id, patch)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("update product failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "failed to update product", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func parseBound(q url.Values, key string, errs []kit.FieldError) (*float64, []kit.FieldError) {
	raw := q.Get(key)
	if raw == "" {
		return nil, errs
	}

	// ParseFloat also accepts NaN and infinities; as bounds those match
	// everything or nothing silently, so reject them alongside garbage.
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, append(errs, kit.FieldError{Field: key, Message: "must be a number"})
	}
	return &v, errs
}
