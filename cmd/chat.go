package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/benmartel/emissary/internal/config"
	"github.com/benmartel/emissary/internal/engine"
	"github.com/benmartel/emissary/internal/notify"
	"github.com/benmartel/emissary/internal/persona"
	"github.com/benmartel/emissary/internal/tools"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	Long: `Run an interactive terminal chat session against the assistant.

The session keeps its transcript in memory; every turn sends the full history
to the model. Type "exit" or "quit" to leave.

A tool invocation can be tested directly with the /tool escape hatch:
  /tool record_user_details email=a@b.com name=Ada
  /tool record_unknown_question question=favorite-color

Required environment variables:
  OPENAI_API_KEY     - API key for the chat-completion endpoint

Examples:
  emissary chat`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	p := persona.Load(cfg.Name, cfg.ProfilePath, cfg.SummaryPath, logger)

	llmConfig := engine.DefaultChatConfig()
	llmConfig.Model = cfg.Model
	llmConfig.APIKey = cfg.OpenAIAPIKey

	llm, err := engine.NewOpenAILLM(llmConfig)
	if err != nil {
		return err
	}

	eng := engine.New(p, llm, llmConfig, logger)

	notifier := notify.NewPushover(notify.PushoverConfig{
		Token: cfg.PushoverToken,
		User:  cfg.PushoverUser,
	}, logger)
	if !notifier.Configured() {
		logger.Warn().Msg("pushover credentials not set, tool notifications will be log-only")
	}
	registry := tools.NewRegistry(notifier, logger)

	// Styling
	var (
		headerColor    = lipgloss.Color("#F780FF") // Bright pink
		userColor      = lipgloss.Color("#8BE9FD") // Cyan
		assistantColor = lipgloss.Color("#E9E9F4") // Light purple/white
		mutedColor     = lipgloss.Color("#6272A4") // Muted purple
		toolColor      = lipgloss.Color("#50FA7B") // Green
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)

	userStyle := lipgloss.NewStyle().
		Foreground(userColor).
		Bold(true)

	assistantStyle := lipgloss.NewStyle().
		Foreground(assistantColor)

	mutedStyle := lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true)

	toolStyle := lipgloss.NewStyle().
		Foreground(toolColor)

	fmt.Println()
	fmt.Println(headerStyle.Render(cfg.Name))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("Ask me about %s's career, background, skills, and experience.", cfg.Name)))
	fmt.Println(mutedStyle.Render(`Type "exit" to leave.`))
	fmt.Println()

	var transcript []engine.Turn
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(userStyle.Render("You: "))
		if !scanner.Scan() {
			break
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		if strings.HasPrefix(message, "/tool ") {
			name, toolArgs := parseToolCommand(message)
			result := registry.Dispatch(ctx, name, toolArgs)
			for k, v := range result {
				fmt.Println(toolStyle.Render(fmt.Sprintf("%s: %s", k, v)))
			}
			fmt.Println()
			continue
		}

		reply := eng.Chat(ctx, message, transcript)

		transcript = append(transcript,
			engine.Turn{Role: engine.RoleUser, Content: message},
			engine.Turn{Role: engine.RoleAssistant, Content: reply},
		)

		fmt.Println(assistantStyle.Render("Assistant: " + reply))
		fmt.Println()
	}

	return scanner.Err()
}

// parseToolCommand splits "/tool name key=value..." into a tool name and its
// argument mapping. Values cannot contain spaces; that is fine for a debug
// affordance.
func parseToolCommand(line string) (string, map[string]string) {
	fields := strings.Fields(strings.TrimPrefix(line, "/tool "))
	if len(fields) == 0 {
		return "", nil
	}

	name := fields[0]
	args := make(map[string]string)
	for _, f := range fields[1:] {
		if key, value, ok := strings.Cut(f, "="); ok {
			args[key] = value
		}
	}
	return name, args
}
