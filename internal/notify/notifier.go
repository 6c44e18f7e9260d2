// Package notify delivers short best-effort alerts to an operator through an
// external messaging endpoint. Delivery is fire-and-forget: a Notifier may
// fail silently, and callers must not depend on a message arriving or on the
// order in which messages arrive.
package notify

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the Pushover message API.
const DefaultEndpoint = "https://api.pushover.net/1/messages.json"

// Notifier sends one short text alert. Implementations log failures locally
// and never return them.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// PushoverConfig holds credentials and the target endpoint for Pushover.
type PushoverConfig struct {
	// Token is the application API token. Empty disables delivery.
	Token string

	// User is the recipient user or group key. Empty disables delivery.
	User string

	// Endpoint overrides the Pushover API URL. Empty means DefaultEndpoint.
	Endpoint string
}

// Pushover implements Notifier against the Pushover message API.
type Pushover struct {
	config PushoverConfig
	client *http.Client
	logger zerolog.Logger
}

// NewPushover creates a Pushover notifier. Missing credentials are not an
// error; the notifier degrades to a logging no-op.
func NewPushover(config PushoverConfig, logger zerolog.Logger) *Pushover {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	return &Pushover{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Configured reports whether both credentials are present.
func (p *Pushover) Configured() bool {
	return p.config.Token != "" && p.config.User != ""
}

// Notify posts the message as a form to the Pushover endpoint. Without
// credentials no network call is made and the message is only logged. Any
// transport failure or rejection is logged and swallowed.
func (p *Pushover) Notify(ctx context.Context, message string) {
	if !p.Configured() {
		p.logger.Warn().Str("message", message).Msg("pushover credentials not configured, message not sent")
		return
	}

	form := url.Values{
		"token":   {p.config.Token},
		"user":    {p.config.User},
		"message": {message},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to build pushover request")
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error().Err(err).Msg("pushover delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Error().Int("status", resp.StatusCode).Msg("pushover rejected the message")
	}
}

// Nop is a Notifier that discards every message.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(ctx context.Context, message string) {}
