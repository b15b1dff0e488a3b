package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/results"
	"github.com/thinktank-analytics/thinktank-engine/pkg/subscriptions"
)

// SubscribeRequest creates a recurring delivery of a saved result's query.
type SubscribeRequest struct {
	UserID    string `json:"user_id"`
	Channel   string `json:"channel"`
	ResultID  string `json:"result_id"`
	Frequency string `json:"frequency"`
}

// SubscriptionsHandler manages recurring query deliveries.
type SubscriptionsHandler struct {
	store   subscriptions.Store
	results *results.Store
	logger  *zap.Logger
}

// NewSubscriptionsHandler creates a new SubscriptionsHandler.
func NewSubscriptionsHandler(store subscriptions.Store, resultStore *results.Store, logger *zap.Logger) *SubscriptionsHandler {
	return &SubscriptionsHandler{store: store, results: resultStore, logger: logger}
}

// RegisterRoutes registers the subscriptions handler's routes on the given mux.
func (h *SubscriptionsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/subscriptions", h.Create)
	mux.HandleFunc("GET /api/subscriptions", h.List)
	mux.HandleFunc("DELETE /api/subscriptions/{id}", h.Delete)
}

// Create handles POST /api/subscriptions requests. The subscription captures
// the SQL behind a stored result so later runs re-execute the same query.
func (h *SubscriptionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserID == "" || req.ResultID == "" || req.Frequency == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "user_id, result_id and frequency are required")
		return
	}
	if req.Channel == "" {
		req.Channel = "chat"
	}

	res, err := h.results.Get(r.Context(), req.ResultID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "not_found", "result not found or expired")
			return
		}
		h.logger.Error("Failed to load result for subscription", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to load result")
		return
	}

	id, err := h.store.Add(r.Context(), req.UserID, req.Channel, res.SQL, res.Explanation, req.Frequency)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidFrequency) {
			_ = ErrorResponse(w, http.StatusBadRequest, "invalid_frequency", "frequency must be hourly, daily or weekly")
			return
		}
		h.logger.Error("Failed to add subscription", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to add subscription")
		return
	}

	_ = WriteJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// List handles GET /api/subscriptions?user_id=... requests.
func (h *SubscriptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "user_id query parameter is required")
		return
	}

	subs, err := h.store.ForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list subscriptions", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to list subscriptions")
		return
	}
	if subs == nil {
		subs = []models.Subscription{}
	}
	_ = WriteJSON(w, http.StatusOK, map[string]any{"subscriptions": subs})
}

// Delete handles DELETE /api/subscriptions/{id} requests.
func (h *SubscriptionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "subscription id must be an integer")
		return
	}

	if err := h.store.Remove(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "not_found", "subscription not found")
			return
		}
		h.logger.Error("Failed to remove subscription", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to remove subscription")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
