// Package config builds the process configuration from the environment. The
// result is an explicit immutable value handed to constructors; nothing
// reads the environment again after startup.
package config

import (
	"errors"
	"os"
)

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable is required")

// Defaults applied when the corresponding variable is unset.
const (
	DefaultName        = "Ben Martel"
	DefaultModel       = "gpt-4o"
	DefaultProfilePath = "me/profile.pdf"
	DefaultSummaryPath = "me/summary.txt"
	DefaultAddr        = ":8080"
)

// Config is the full startup configuration.
type Config struct {
	// OpenAIAPIKey authenticates against the inference endpoint. Required.
	OpenAIAPIKey string

	// PushoverToken and PushoverUser enable notifications. Both optional;
	// without them the notifier is a logging no-op.
	PushoverToken string
	PushoverUser  string

	// Name is the person the assistant represents.
	Name string

	// Model is the chat-completion model identifier.
	Model string

	// ProfilePath and SummaryPath locate the grounding documents.
	ProfilePath string
	SummaryPath string
}

// Load reads the environment. It fails only when the required inference
// credential is absent; every other setting has a default or degrades later.
func Load() (Config, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return Config{
		OpenAIAPIKey:  apiKey,
		PushoverToken: os.Getenv("PUSHOVER_TOKEN"),
		PushoverUser:  os.Getenv("PUSHOVER_USER"),
		Name:          envOr("ASSISTANT_NAME", DefaultName),
		Model:         envOr("ASSISTANT_MODEL", DefaultModel),
		ProfilePath:   envOr("PROFILE_PDF", DefaultProfilePath),
		SummaryPath:   envOr("SUMMARY_FILE", DefaultSummaryPath),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
