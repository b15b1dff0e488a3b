package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/services"
)

// ChatRequest is one user message to the assistant.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ChatHandler exposes the conversational turn endpoint.
type ChatHandler struct {
	conversation *services.ConversationService
	logger       *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(conversation *services.ConversationService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{conversation: conversation, logger: logger}
}

// RegisterRoutes registers the chat handler's routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", h.Chat)
}

// Chat handles POST /api/chat requests. Every turn produces a reply; failures
// inside the pipeline come back as explanatory messages, not errors.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Message == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "message is required")
		return
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}

	reply := h.conversation.HandleTurn(r.Context(), req.UserID, req.Message)

	if err := WriteJSON(w, http.StatusOK, reply); err != nil {
		h.logger.Error("Failed to encode chat response", zap.Error(err))
	}
}
