package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAILLM implements the LLM interface using OpenAI's API.
type OpenAILLM struct {
	client openai.Client
	config ChatConfig
}

// NewOpenAILLM creates an OpenAI-backed LLM implementation.
// Returns an error if the API key is missing or invalid.
func NewOpenAILLM(config ChatConfig) (*OpenAILLM, error) {
	// Use config API key or fall back to environment variable
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key (set OPENAI_API_KEY or provide in config)", ErrInvalidConfig)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAILLM{
		client: client,
		config: config,
	}, nil
}

// Complete sends the message sequence to OpenAI and returns the reply text.
// A response carrying no choices is an empty reply, not an error; the engine
// substitutes its fixed empty-reply text for it.
func (o *OpenAILLM) Complete(ctx context.Context, turns []Turn) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("%w: message sequence cannot be empty", ErrInvalidConfig)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(t.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(t.Content))
		default:
			messages = append(messages, openai.UserMessage(t.Content))
		}
	}

	// Build the chat completion parameters
	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(o.config.Model),
		Messages: messages,
	}

	// Set optional parameters if configured
	if o.config.Temperature > 0 {
		params.Temperature = openai.Float(float64(o.config.Temperature))
	}
	if o.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(o.config.MaxTokens))
	}

	// Call the OpenAI API
	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLLMFailed, err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}

	return completion.Choices[0].Message.Content, nil
}
