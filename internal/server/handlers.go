package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
	"indigo-pricing/internal/pricing"
)

// QuoteProduct decodes a raw JSON request for the named product and runs
// the matching calculator. The CLI quote command shares this dispatch with
// the HTTP handlers.
func QuoteProduct(engine *pricing.Engine, product string, body []byte) (any, error) {
	decode := func(dst any) error {
		if err := json.Unmarshal(body, dst); err != nil {
			return apperror.Constraint(fmt.Sprintf("invalid request body: %v", err))
		}
		return nil
	}

	switch product {
	case catalog.ProductFlatPrints:
		var in pricing.FlatPrintInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return engine.FlatPrint(in)
	case catalog.ProductFoldedPrints:
		var in pricing.FoldedPrintInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return engine.FoldedPrint(in)
	case catalog.ProductBooklets:
		var in pricing.BookletInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return engine.Booklet(in)
	case catalog.ProductNotebooks:
		var in pricing.NotebookInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return engine.Notebook(in)
	case catalog.ProductNotepads:
		var in pricing.NotepadInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return engine.Notepad(in)
	case catalog.ProductPosters:
		var in pricing.PosterInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return engine.Poster(in)
	case catalog.ProductPerfectBound:
		var in pricing.PerfectBoundInput
		if err := decode(&in); err != nil {
			return nil, err
		}
		return engine.PerfectBound(in)
	default:
		return nil, apperror.NotFound(fmt.Sprintf("unknown product %q", product))
	}
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	product := chi.URLParam(r, "product")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.writeError(w, apperror.Constraint("request body too large or unreadable"))
		return
	}

	quote, err := QuoteProduct(s.engine, product, body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, quote)
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"papers": s.engine.Catalog().Papers(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps the pricing error taxonomy onto HTTP statuses. Every
// engine rejection is client-facing data, never a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case apperror.Is(err, apperror.KindNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case apperror.Is(err, apperror.KindConstraint):
		status, msg = http.StatusBadRequest, err.Error()
	case apperror.Is(err, apperror.KindInvalidSelection),
		apperror.Is(err, apperror.KindGeometry),
		apperror.Is(err, apperror.KindPhysical):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	default:
		s.logger.Error("quote failed", zap.Error(err))
	}

	s.writeJSON(w, status, map[string]string{"error": msg})
}
