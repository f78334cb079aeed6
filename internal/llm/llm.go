package llm

import (
	"context"
	"errors"
)

// Chat message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry in a chat-completion conversation.
type Message struct {
	Role    string
	Content string
}

// Client abstracts an LLM chat-completion provider. Chat returns the raw text
// content of the first choice; callers extract any structured payload from it.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// Provider error classes the orchestrator maps to HTTP statuses. Anything else
// is a generic analysis failure.
var (
	ErrRateLimited = errors.New("llm provider rate limited")
	ErrUnavailable = errors.New("llm provider unavailable")
)
