package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/os10prep/os10-backend/internal/genai"
	"github.com/os10prep/os10-backend/internal/response"
	"github.com/os10prep/os10-backend/internal/validator"
)

// ChatClient is the conversational surface of the assistant. Implemented by
// genai.Client.
type ChatClient interface {
	Chat(ctx context.Context, history []genai.ChatMessage, message string) (*genai.ChatResult, error)
}

// AssistantHandler exposes the virtual instructor chat.
type AssistantHandler struct {
	chat ChatClient
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(chat ChatClient) *AssistantHandler {
	return &AssistantHandler{chat: chat}
}

// ChatRequest is the assistant chat payload. History is client-held; the
// server keeps no conversation state.
type ChatRequest struct {
	History []genai.ChatMessage `json:"history" binding:"dive"`
	Message string              `json:"message" binding:"required,min=1,max=2000"`
}

// Chat godoc
// POST /api/v1/assistant/chat
// Relays one conversation turn to the virtual instructor. The reply may
// carry a navigation target the client should switch to.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.chat.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		response.Fail(c, http.StatusServiceUnavailable, response.ErrAssistantUnavailable)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reply":       result.Reply,
		"navigate_to": result.NavigateTo,
	})
}
