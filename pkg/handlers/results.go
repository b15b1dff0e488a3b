package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/results"
)

// ResultsHandler serves stored query results and their CSV exports.
type ResultsHandler struct {
	store  *results.Store
	logger *zap.Logger
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(store *results.Store, logger *zap.Logger) *ResultsHandler {
	return &ResultsHandler{store: store, logger: logger}
}

// RegisterRoutes registers the results handler's routes on the given mux.
func (h *ResultsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/results/{id}", h.Get)
	mux.HandleFunc("GET /api/results/{id}/export", h.Export)
}

// Get handles GET /api/results/{id} requests.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "not_found", "result not found or expired")
			return
		}
		h.logger.Error("Failed to load result", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to load result")
		return
	}
	_ = WriteJSON(w, http.StatusOK, res)
}

// Export handles GET /api/results/{id}/export requests. The stored table is
// already masked, so the export never re-touches the warehouse.
func (h *ResultsHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	res, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "not_found", "result not found or expired")
			return
		}
		h.logger.Error("Failed to load result for export", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to load result")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "result_"+id+".csv"))
	if err := results.WriteCSV(w, res.Table); err != nil {
		h.logger.Error("Failed to write csv export",
			zap.String("result_id", id), zap.Error(err))
	}
}
