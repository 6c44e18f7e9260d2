package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// spyNotifier records every message it is asked to deliver.
type spyNotifier struct {
	messages []string
}

func (s *spyNotifier) Notify(ctx context.Context, message string) {
	s.messages = append(s.messages, message)
}

func TestRegistry_Dispatch_RecordUserDetails(t *testing.T) {
	spy := &spyNotifier{}
	registry := NewRegistry(spy, zerolog.Nop())

	result := registry.Dispatch(context.Background(), "record_user_details", map[string]string{
		"email": "a@b.com",
	})

	if result["recorded"] != "ok" {
		t.Errorf("expected recorded=ok, got %q", result["recorded"])
	}
	if !strings.Contains(result["status"], "a@b.com") {
		t.Errorf("status should name the email, got %q", result["status"])
	}

	if len(spy.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(spy.messages))
	}
	if !strings.Contains(spy.messages[0], "a@b.com") {
		t.Errorf("notification should carry the email, got %q", spy.messages[0])
	}
	// Missing name and notes fall back to fixed defaults.
	if !strings.Contains(spy.messages[0], "Name not provided") {
		t.Errorf("expected name default in %q", spy.messages[0])
	}
	if !strings.Contains(spy.messages[0], "not provided") {
		t.Errorf("expected notes default in %q", spy.messages[0])
	}
}

func TestRegistry_Dispatch_RecordUnknownQuestion(t *testing.T) {
	spy := &spyNotifier{}
	registry := NewRegistry(spy, zerolog.Nop())

	result := registry.Dispatch(context.Background(), "record_unknown_question", map[string]string{
		"question": "What is your favorite color?",
	})

	if result["recorded"] != "ok" {
		t.Errorf("expected recorded=ok, got %q", result["recorded"])
	}
	if result["status"] != "Question 'What is your favorite color?' recorded." {
		t.Errorf("unexpected status: %q", result["status"])
	}
	if len(spy.messages) != 1 || !strings.Contains(spy.messages[0], "favorite color") {
		t.Errorf("notification should carry the question, got %v", spy.messages)
	}
}

func TestRegistry_Dispatch_UnknownTool(t *testing.T) {
	spy := &spyNotifier{}
	registry := NewRegistry(spy, zerolog.Nop())

	result := registry.Dispatch(context.Background(), "unknown_tool", map[string]string{})

	if !strings.Contains(result["error"], "unknown_tool") {
		t.Errorf("error field should name the tool, got %q", result["error"])
	}
	if result["status"] != "Tool not found." {
		t.Errorf("unexpected status: %q", result["status"])
	}
	if _, ok := result["recorded"]; ok {
		t.Error("unknown tool must not report recorded=ok")
	}
	if len(spy.messages) != 0 {
		t.Errorf("unknown tool must not notify, got %v", spy.messages)
	}
}

func TestRegistry_RecordUserDetails_AllArgs(t *testing.T) {
	spy := &spyNotifier{}
	registry := NewRegistry(spy, zerolog.Nop())

	registry.RecordUserDetails(context.Background(), map[string]string{
		"email": "ada@example.com",
		"name":  "Ada",
		"notes": "asked about consulting",
	})

	want := "Recording user: Ada with email ada@example.com and notes: asked about consulting"
	if len(spy.messages) != 1 || spy.messages[0] != want {
		t.Errorf("expected %q, got %v", want, spy.messages)
	}
}
