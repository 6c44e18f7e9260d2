package engine

import "context"

// MockLLM is a deterministic LLM implementation for testing.
type MockLLM struct {
	// Response is the fixed text returned by Complete.
	Response string

	// Error, if set, is returned by Complete instead of a response.
	Error error

	// LastTurns stores the most recent message sequence passed to Complete.
	LastTurns []Turn
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Complete records the message sequence and returns the configured result.
func (m *MockLLM) Complete(ctx context.Context, turns []Turn) (string, error) {
	m.LastTurns = append([]Turn(nil), turns...)

	if m.Error != nil {
		return "", m.Error
	}

	return m.Response, nil
}
