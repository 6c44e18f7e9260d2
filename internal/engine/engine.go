package engine

import (
	"context"
	"strings"

	"github.com/benmartel/emissary/internal/persona"
	"github.com/rs/zerolog"
)

// Fixed user-facing fallback strings. Chat substitutes these instead of ever
// surfacing an error or an empty reply to the presentation shell.
const (
	ApologyReply = "Sorry, I encountered an error while trying to process your request."
	EmptyReply   = "I received a response, but it was empty."
)

// Engine drives one chat turn at a time against the configured LLM. It holds
// no transcript state; history is supplied by the caller on every call.
type Engine struct {
	persona persona.Persona
	llm     LLM
	config  ChatConfig
	logger  zerolog.Logger
}

// New creates a conversation engine for the given persona.
func New(p persona.Persona, llm LLM, config ChatConfig, logger zerolog.Logger) *Engine {
	return &Engine{
		persona: p,
		llm:     llm,
		config:  config,
		logger:  logger,
	}
}

// Chat submits one user turn and returns the assistant's reply. It issues
// exactly one request to the inference endpoint, with no retry and no
// streaming. Chat always returns a non-empty string: transport and endpoint
// failures are caught here, logged in full, and replaced with ApologyReply.
func (e *Engine) Chat(ctx context.Context, message string, history []Turn) string {
	turns := e.buildTurns(message, history)

	reply, err := e.llm.Complete(ctx, turns)
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("model", e.config.Model).
			Int("history_turns", len(history)).
			Msg("chat turn failed")
		return ApologyReply
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		e.logger.Warn().Str("model", e.config.Model).Msg("model returned an empty reply")
		return EmptyReply
	}

	return reply
}

// buildTurns assembles the full message sequence: the system prompt first,
// then the caller's history with roles normalized, then the new user message.
// History order is preserved exactly as supplied.
func (e *Engine) buildTurns(message string, history []Turn) []Turn {
	turns := make([]Turn, 0, len(history)+2)
	turns = append(turns, Turn{Role: RoleSystem, Content: systemPrompt(e.persona)})
	for _, t := range history {
		turns = append(turns, Turn{Role: normalizeRole(t.Role), Content: t.Content})
	}
	turns = append(turns, Turn{Role: RoleUser, Content: message})
	return turns
}

// normalizeRole maps anything outside user/assistant to user, so a stray
// system turn in the history cannot override the persona prompt.
func normalizeRole(r Role) Role {
	switch r {
	case RoleUser, RoleAssistant:
		return r
	default:
		return RoleUser
	}
}
