package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/courtside/nba-api/internal/api/respond"
	"github.com/courtside/nba-api/internal/watsonx"
)

// ChatRequest is the inbound conversation, oldest message first.
type ChatRequest struct {
	Messages []watsonx.ChatMessage `json:"messages"`
}

// ChatResponse carries the assistant's reply text.
type ChatResponse struct {
	Response string `json:"response"`
}

// Chat relays a conversation to watsonx.ai and returns the reply.
// A fresh client is built per request so credential changes take effect
// without a restart. Any relay failure surfaces as a single 500; nothing is
// retried.
// @Summary Chat with the NBA assistant
// @Description Forwards role-tagged messages to watsonx.ai chat inference and relays the reply.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Conversation messages"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	client, err := watsonx.NewClientFromEnv()
	if err != nil {
		slog.Error("chat relay client setup failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "CHAT_ERROR", "Chat error: "+err.Error())
		return
	}

	reply, err := client.Chat(req.Messages)
	if err != nil {
		slog.Error("chat relay call failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "CHAT_ERROR", "Chat error: "+err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusOK, ChatResponse{Response: reply})
}
