package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kipkirui63/all-in-one/internal/service"
)

const chatUnavailable = "Sorry, I'm experiencing technical difficulties. Please contact our team directly."

// ChatHandler exposes the chat assistant.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a ChatHandler with the given service.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

type chatError struct {
	Error string `json:"error"`
}

// maxSessionIDLength bounds caller-supplied session ids.
const maxSessionIDLength = 128

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, chatError{Error: "Message is required"})
		return
	}
	if len(req.SessionID) > maxSessionIDLength {
		writeJSON(w, http.StatusBadRequest, chatError{Error: "Session id is too long"})
		return
	}

	reply, sessionID, err := h.chatService.HandleMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		slog.ErrorContext(r.Context(), "chat failed", "session_id", sessionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, chatError{Error: chatUnavailable})
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Response: reply, SessionID: sessionID})
}

// NewSession handles POST /api/chat/session.
func (h *ChatHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.chatService.NewSessionID(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "mint chat session id failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, chatError{Error: chatUnavailable})
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id})
}
