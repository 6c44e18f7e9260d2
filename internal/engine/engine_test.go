package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/benmartel/emissary/internal/persona"
	"github.com/rs/zerolog"
)

func testPersona() persona.Persona {
	return persona.Persona{
		Name:    "Ada Lovelace",
		Summary: "Pioneer of computing.",
		Profile: "Analytical Engine programme notes.",
	}
}

func newTestEngine(llm LLM) *Engine {
	config := DefaultChatConfig()
	config.Model = "test-model"
	return New(testPersona(), llm, config, zerolog.Nop())
}

func TestEngine_Chat_Success(t *testing.T) {
	mock := NewMockLLM("5 years in X.")
	eng := newTestEngine(mock)

	reply := eng.Chat(context.Background(), "What is your experience?", nil)

	if reply != "5 years in X." {
		t.Errorf("expected model reply, got %q", reply)
	}

	// Empty history: exactly [system, user].
	if len(mock.LastTurns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(mock.LastTurns))
	}
	if mock.LastTurns[0].Role != RoleSystem {
		t.Errorf("first turn must be the system prompt, got role %q", mock.LastTurns[0].Role)
	}
	if mock.LastTurns[1].Role != RoleUser || mock.LastTurns[1].Content != "What is your experience?" {
		t.Errorf("last turn must be the new user message, got %+v", mock.LastTurns[1])
	}
}

func TestEngine_Chat_SystemPromptContent(t *testing.T) {
	mock := NewMockLLM("ok")
	eng := newTestEngine(mock)

	eng.Chat(context.Background(), "hi", nil)

	prompt := mock.LastTurns[0].Content
	for _, want := range []string{
		"Ada Lovelace",
		"Pioneer of computing.",
		"Analytical Engine programme notes.",
		"Do not invent answers.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestEngine_Chat_TransportError(t *testing.T) {
	mock := NewMockLLMWithError(errors.New("connection refused"))
	eng := newTestEngine(mock)

	reply := eng.Chat(context.Background(), "hello", nil)

	if reply != ApologyReply {
		t.Errorf("expected fixed apology %q, got %q", ApologyReply, reply)
	}
}

func TestEngine_Chat_EmptyReply(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty string", response: ""},
		{name: "whitespace only", response: "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(NewMockLLM(tt.response))

			reply := eng.Chat(context.Background(), "hello", nil)

			if reply != EmptyReply {
				t.Errorf("expected fixed empty-reply text %q, got %q", EmptyReply, reply)
			}
		})
	}
}

func TestEngine_Chat_NeverReturnsEmpty(t *testing.T) {
	histories := [][]Turn{
		nil,
		{},
		{{Role: RoleUser, Content: "earlier question"}, {Role: RoleAssistant, Content: "earlier answer"}},
	}

	for _, history := range histories {
		for _, llm := range []LLM{
			NewMockLLM("a reply"),
			NewMockLLM(""),
			NewMockLLMWithError(errors.New("boom")),
		} {
			eng := newTestEngine(llm)
			if reply := eng.Chat(context.Background(), "anything", history); reply == "" {
				t.Errorf("Chat returned an empty string for history %v", history)
			}
		}
	}
}

func TestEngine_Chat_RoleNormalization(t *testing.T) {
	mock := NewMockLLM("ok")
	eng := newTestEngine(mock)

	history := []Turn{
		{Role: RoleSystem, Content: "sneaky override"},
		{Role: RoleAssistant, Content: "earlier answer"},
		{Role: Role("tool"), Content: "tool output"},
		{Role: RoleUser, Content: "earlier question"},
	}

	eng.Chat(context.Background(), "new question", history)

	if len(mock.LastTurns) != len(history)+2 {
		t.Fatalf("expected %d turns, got %d", len(history)+2, len(mock.LastTurns))
	}

	wantRoles := []Role{RoleSystem, RoleUser, RoleAssistant, RoleUser, RoleUser, RoleUser}
	for i, want := range wantRoles {
		if mock.LastTurns[i].Role != want {
			t.Errorf("turn %d: expected role %q, got %q", i, want, mock.LastTurns[i].Role)
		}
	}

	// Content and order of the history are untouched by normalization.
	wantContent := []string{"sneaky override", "earlier answer", "tool output", "earlier question"}
	for i, want := range wantContent {
		if got := mock.LastTurns[i+1].Content; got != want {
			t.Errorf("history turn %d: expected content %q, got %q", i, want, got)
		}
	}
}

func TestMockLLM_Complete(t *testing.T) {
	tests := []struct {
		name     string
		mock     *MockLLM
		wantErr  bool
		wantText string
	}{
		{
			name:     "fixed response",
			mock:     NewMockLLM("Fixed reply"),
			wantErr:  false,
			wantText: "Fixed reply",
		},
		{
			name:    "error response",
			mock:    NewMockLLMWithError(errors.New("mock error")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turns := []Turn{{Role: RoleUser, Content: "hi"}}
			text, err := tt.mock.Complete(context.Background(), turns)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if text != tt.wantText {
				t.Errorf("expected %q, got %q", tt.wantText, text)
			}
			if len(tt.mock.LastTurns) != 1 || tt.mock.LastTurns[0].Content != "hi" {
				t.Errorf("LastTurns not recorded: %+v", tt.mock.LastTurns)
			}
		})
	}
}

func TestNewOpenAILLM_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewOpenAILLM(ChatConfig{Model: "gpt-4o"})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewOpenAILLM_MissingModel(t *testing.T) {
	_, err := NewOpenAILLM(ChatConfig{APIKey: "sk-test"})
	if err == nil {
		t.Fatal("expected error for missing model")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestDefaultChatConfig(t *testing.T) {
	config := DefaultChatConfig()

	if config.Model == "" {
		t.Error("default model must be set")
	}
	if config.MaxTokens <= 0 {
		t.Error("default max tokens must be a fixed positive budget")
	}
}
