// Package engine assembles conversational context and drives chat turns
// against a hosted LLM endpoint. It defines a provider-agnostic LLM interface
// with a concrete implementation for OpenAI and a deterministic mock for
// testing. The engine consumes a persona plus a caller-owned transcript and
// always returns a user-presentable reply string.
package engine

import (
	"context"
	"errors"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

// LLM defines the interface for interacting with chat-completion models.
// Implementations must be stateless and thread-safe.
type LLM interface {
	// Complete sends the ordered message sequence to the model and returns
	// the reply text. An empty reply with a nil error means the model
	// produced no usable content.
	Complete(ctx context.Context, turns []Turn) (string, error)
}

// ChatConfig holds common configuration options for LLM providers.
type ChatConfig struct {
	// Model specifies the model identifier (e.g., "gpt-4o", "gpt-4o-mini")
	Model string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float32

	// MaxTokens limits the reply length (0 = use provider default)
	MaxTokens int

	// APIKey is the authentication key for the provider
	APIKey string
}

// DefaultChatConfig returns the fixed generation budget used for each turn.
func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		Model:       "gpt-4o",
		Temperature: 0.7,
		MaxTokens:   1024,
	}
}
