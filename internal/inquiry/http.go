package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MedSupply/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

type createResp struct {
	Success   bool   `json:"success"`
	InquiryID string `json:"inquiryId"`
	Message   string `json:"message"`
}

// Handlers are exposed individually so the app can put a rate limiter on
// create without touching the read endpoints.
func (s *Server) CreateHandler() http.HandlerFunc { return s.create }
func (s *Server) ListHandler() http.HandlerFunc   { return s.list }
func (s *Server) GetHandler() http.HandlerFunc    { return s.get }

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var in InsertInquiry
	if err := kit.DecodeJSON(w, r, &in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	if errs := ValidateInsert(in); len(errs) > 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid data", errs)
		return
	}

	q, err := s.Store.Create(r.Context(), in)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("create inquiry failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "failed to create inquiry", nil)
		return
	}

	// Real email delivery would hook in here; for now the log entry is the
	// notification.
	if s.Log != nil {
		s.Log.Info("inquiry created",
			zap.String("inquiry_id", q.ID),
			zap.String("customer", q.CustomerName),
			zap.Int("items", len(q.Products)),
			zap.Float64("total", q.TotalAmount),
		)
	}

	kit.WriteJSON(w, http.StatusCreated, createResp{
		Success:   true,
		InquiryID: q.ID,
		Message:   "Inquiry submitted successfully",
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	inquiries, err := s.Store.List(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list inquiries failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "failed to fetch inquiries", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, inquiries)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get inquiry failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "failed to fetch inquiry", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "inquiry not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, q)
}
