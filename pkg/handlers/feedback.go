package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/feedback"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// FeedbackHandler exposes the expert review endpoints over the feedback store.
type FeedbackHandler struct {
	store  feedback.Store
	logger *zap.Logger
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(store feedback.Store, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{store: store, logger: logger}
}

// RegisterRoutes registers the feedback handler's routes on the given mux.
func (h *FeedbackHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/feedback/pending", h.Pending)
	mux.HandleFunc("POST /api/feedback/{id}/approve", h.Approve)
	mux.HandleFunc("POST /api/feedback/{id}/reject", h.Reject)
	mux.HandleFunc("GET /api/feedback/approved-logic", h.ApprovedLogic)
}

// Pending handles GET /api/feedback/pending requests.
func (h *FeedbackHandler) Pending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.store.Pending(r.Context())
	if err != nil {
		h.logger.Error("Failed to list pending feedback", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to list pending feedback")
		return
	}
	if pending == nil {
		pending = []models.Feedback{}
	}
	_ = WriteJSON(w, http.StatusOK, map[string]any{"feedback": pending})
}

// Approve handles POST /api/feedback/{id}/approve requests.
func (h *FeedbackHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, models.FeedbackApproved)
}

// Reject handles POST /api/feedback/{id}/reject requests.
func (h *FeedbackHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, models.FeedbackRejected)
}

func (h *FeedbackHandler) review(w http.ResponseWriter, r *http.Request, status string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "feedback id must be an integer")
		return
	}

	_, err = h.store.UpdateStatus(r.Context(), id, status)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		_ = ErrorResponse(w, http.StatusNotFound, "not_found", "feedback not found")
		return
	case errors.Is(err, apperrors.ErrStatusFinalized):
		_ = ErrorResponse(w, http.StatusConflict, "status_finalized", "feedback already reviewed with a different outcome")
		return
	case errors.Is(err, apperrors.ErrInvalidStatus):
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_status", "invalid review status")
		return
	case err != nil:
		h.logger.Error("Failed to update feedback status",
			zap.Int64("feedback_id", id), zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to update feedback status")
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]any{"id": id, "status": status})
}

// ApprovedLogic handles GET /api/feedback/approved-logic requests.
func (h *FeedbackHandler) ApprovedLogic(w http.ResponseWriter, r *http.Request) {
	logic, err := h.store.ApprovedLogic(r.Context())
	if err != nil {
		h.logger.Error("Failed to list approved logic", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to list approved logic")
		return
	}
	if logic == nil {
		logic = []models.ApprovedLogic{}
	}
	_ = WriteJSON(w, http.StatusOK, map[string]any{"approved_logic": logic})
}
