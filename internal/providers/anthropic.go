package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

const anthropicAPIVersion = "2023-06-01"

// Anthropic probes Anthropic's API by listing models with the configured key.
type Anthropic struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newAnthropic(settings config.Provider) *Anthropic {
	base := settings.BaseURL
	if base == "" {
		base = "https://api.anthropic.com/v1"
	}
	return &Anthropic{
		apiKey:  settings.APIKey,
		baseURL: strings.TrimRight(base, "/"),
		client:  httpClient(settings.TimeoutSeconds),
	}
}

func (a *Anthropic) Name() string { return config.ProviderAnthropic }

func (a *Anthropic) Probe(ctx context.Context) error {
	if a.apiKey == "" {
		return fmt.Errorf("no API key configured")
	}
	header := http.Header{}
	header.Set("x-api-key", a.apiKey)
	header.Set("anthropic-version", anthropicAPIVersion)
	return retryWithBackoff(ctx, 2, func() error {
		return doProbe(ctx, a.client, a.baseURL+"/models", header)
	})
}
