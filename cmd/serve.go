package cmd

import (
	"net/http"
	"time"

	"github.com/benmartel/emissary/internal/config"
	"github.com/benmartel/emissary/internal/engine"
	"github.com/benmartel/emissary/internal/persona"
	"github.com/benmartel/emissary/internal/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web chat UI",
	Long: `Serve the single-page chat UI and its JSON API.

Required environment variables:
  OPENAI_API_KEY     - API key for the chat-completion endpoint

Optional environment variables:
  ASSISTANT_NAME     - person the assistant represents
  ASSISTANT_MODEL    - chat-completion model (default: gpt-4o)
  PROFILE_PDF        - résumé PDF path (default: me/profile.pdf)
  SUMMARY_FILE       - summary text path (default: me/summary.txt)
  PUSHOVER_TOKEN     - Pushover application token
  PUSHOVER_USER      - Pushover recipient key

Examples:
  emissary serve
  emissary serve --addr :3000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", config.DefaultAddr, "listen address for the web UI")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

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
	shell := web.NewServer(eng, cfg.Name, logger)

	server := &http.Server{
		Addr:              serveAddr,
		Handler:           shell.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().
		Str("addr", serveAddr).
		Str("model", cfg.Model).
		Str("name", cfg.Name).
		Msg("serving chat UI")

	return server.ListenAndServe()
}
