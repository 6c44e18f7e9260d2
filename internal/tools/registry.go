// Package tools holds the named side-effecting actions the assistant can
// request. "Recording" is entirely the notification side effect; there is no
// durable store behind these actions.
package tools

import (
	"context"
	"fmt"

	"github.com/benmartel/emissary/internal/notify"
	"github.com/rs/zerolog"
)

// Tool names accepted by Dispatch.
const (
	ToolRecordUserDetails     = "record_user_details"
	ToolRecordUnknownQuestion = "record_unknown_question"
)

// Registry routes named tool invocations to their actions. Dispatch is an
// independently callable capability: the chat path does not parse model
// replies for tool requests, so nothing invokes it from a chat turn.
type Registry struct {
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewRegistry creates a registry that reports events through the notifier.
func NewRegistry(notifier notify.Notifier, logger zerolog.Logger) *Registry {
	return &Registry{
		notifier: notifier,
		logger:   logger,
	}
}

// Dispatch routes a tool invocation by exact name match. Unknown names yield
// a structured not-found result rather than an error.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]string) map[string]string {
	switch name {
	case ToolRecordUserDetails:
		return r.RecordUserDetails(ctx, args)
	case ToolRecordUnknownQuestion:
		return r.RecordUnknownQuestion(ctx, args)
	default:
		r.logger.Warn().Str("tool", name).Msg("unknown tool requested")
		return map[string]string{
			"error":  fmt.Sprintf("unknown tool: %s", name),
			"status": "Tool not found.",
		}
	}
}

// RecordUserDetails notes a visitor's contact details. Missing arguments
// fall back to fixed defaults rather than failing.
func (r *Registry) RecordUserDetails(ctx context.Context, args map[string]string) map[string]string {
	email := argOr(args, "email", "Email not provided")
	name := argOr(args, "name", "Name not provided")
	notes := argOr(args, "notes", "not provided")

	message := fmt.Sprintf("Recording user: %s with email %s and notes: %s", name, email, notes)
	r.notifier.Notify(ctx, message)
	r.logger.Info().Str("email", email).Str("name", name).Msg("recorded user details")

	return map[string]string{
		"recorded": "ok",
		"status":   fmt.Sprintf("Details for %s noted.", email),
	}
}

// RecordUnknownQuestion notes a question the assistant could not answer.
func (r *Registry) RecordUnknownQuestion(ctx context.Context, args map[string]string) map[string]string {
	question := argOr(args, "question", "not provided")

	message := fmt.Sprintf("Recording unknown question: %s", question)
	r.notifier.Notify(ctx, message)
	r.logger.Info().Str("question", question).Msg("recorded unknown question")

	return map[string]string{
		"recorded": "ok",
		"status":   fmt.Sprintf("Question '%s' recorded.", question),
	}
}

func argOr(args map[string]string, key, fallback string) string {
	if v, ok := args[key]; ok && v != "" {
		return v
	}
	return fallback
}
