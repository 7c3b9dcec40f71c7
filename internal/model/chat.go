package model

import "time"

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is the history of one assistant conversation.
type ChatSession struct {
	ID           string        `json:"id"`
	Messages     []ChatMessage `json:"messages"`
	CreatedAt    time.Time     `json:"createdAt"`
	LastActivity time.Time     `json:"lastActivity"`
}

// Append adds a message and bumps LastActivity.
func (s *ChatSession) Append(role, content string, at time.Time) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content, Timestamp: at})
	s.LastActivity = at
}

// Recent returns up to n of the newest messages, oldest first.
func (s *ChatSession) Recent(n int) []ChatMessage {
	msgs := s.Messages
	if n >= 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// CompletionRequest is what the chat manager asks a language model for.
type CompletionRequest struct {
	Model            string
	System           string
	Messages         []ChatMessage // oldest first
	MaxTokens        int
	Temperature      float32
	PresencePenalty  float32
	FrequencyPenalty float32
}
