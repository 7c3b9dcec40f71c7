package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/repository"
)

// Fixed assistant texts.
const (
	ChatGreeting      = "Hi! I'm here to help with CrispAI. Could I get your name and email for personalized assistance?"
	ChatEmptyReply    = "I apologize, but I'm having trouble processing your request right now. Please try again or contact us directly at info@crispai.ca"
	ChatFallbackReply = "I'm experiencing technical difficulties right now. Please contact our team directly at info@crispai.ca or +1 (343) 580-1393 for immediate assistance."
)

// ChatHistoryWindow is how many stored messages are sent to the model.
const ChatHistoryWindow = 10

const (
	chatMaxTokens        = 100
	chatTemperature      = 0.7
	chatPresencePenalty  = 0.1
	chatFrequencyPenalty = 0.1
	sessionIDPrefix      = "chat_"
	maxSessionIDAttempts = 5
)

// Completer generates the assistant's next reply. *gemini.Client is the
// production implementation.
type Completer interface {
	Complete(ctx context.Context, req model.CompletionRequest) (string, error)
}

// ChatService はチャットセッションを管理し、応答を生成する
type ChatService interface {
	// HandleMessage appends message to the session (creating it when needed)
	// and returns the assistant reply with the session id used. An empty
	// sessionID mints a new one.
	HandleMessage(ctx context.Context, sessionID, message string) (reply, usedID string, err error)
	// NewSessionID mints an id not currently in use.
	NewSessionID(ctx context.Context) (string, error)
	// Sweep removes sessions idle for longer than the configured timeout.
	Sweep(ctx context.Context) (int, error)
}

// ChatConfig configures the chat manager.
type ChatConfig struct {
	Model       string
	IdleTimeout time.Duration
}

type chatServiceImpl struct {
	sessions  repository.ChatSessionRepository
	completer Completer
	cfg       ChatConfig
	now       func() time.Time
}

// NewChatService creates the chat manager.
func NewChatService(sessions repository.ChatSessionRepository, completer Completer, cfg ChatConfig) ChatService {
	return &chatServiceImpl{sessions: sessions, completer: completer, cfg: cfg, now: time.Now}
}

func (s *chatServiceImpl) HandleMessage(ctx context.Context, sessionID, message string) (string, string, error) {
	if sessionID == "" {
		id, err := s.NewSessionID(ctx)
		if err != nil {
			return "", "", err
		}
		sessionID = id
	}

	// セッションロックはターン全体（モデル呼び出しを含む）の間保持する
	session, _, release, err := s.sessions.Acquire(ctx, sessionID, s.now())
	if err != nil {
		return "", sessionID, fmt.Errorf("acquire session: %w", err)
	}
	defer release()

	first := len(session.Messages) == 0
	session.Append(model.RoleUser, message, s.now())

	if first {
		session.Append(model.RoleAssistant, ChatGreeting, s.now())
		slog.DebugContext(ctx, "chat session greeted", "session_id", sessionID)
		return ChatGreeting, sessionID, nil
	}

	reply, err := s.completer.Complete(ctx, model.CompletionRequest{
		Model:            s.cfg.Model,
		System:           chatSystemPrompt,
		Messages:         session.Recent(ChatHistoryWindow),
		MaxTokens:        chatMaxTokens,
		Temperature:      chatTemperature,
		PresencePenalty:  chatPresencePenalty,
		FrequencyPenalty: chatFrequencyPenalty,
	})
	switch {
	case err != nil:
		slog.ErrorContext(ctx, "chat completion failed", "session_id", sessionID, "error", err)
		reply = ChatFallbackReply
	case strings.TrimSpace(reply) == "":
		reply = ChatEmptyReply
	}

	session.Append(model.RoleAssistant, reply, s.now())
	return reply, sessionID, nil
}

func (s *chatServiceImpl) NewSessionID(ctx context.Context) (string, error) {
	for i := 0; i < maxSessionIDAttempts; i++ {
		id := sessionIDPrefix + ulid.Make().String()
		exists, err := s.sessions.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not mint a unique session id after %d attempts", maxSessionIDAttempts)
}

func (s *chatServiceImpl) Sweep(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.cfg.IdleTimeout)
	n, err := s.sessions.DeleteIdle(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.InfoContext(ctx, "expired chat sessions removed", "count", n, "remaining", s.sessions.Len())
	}
	return n, nil
}
