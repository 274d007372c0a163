package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// OpenRouter probes OpenRouter's OpenAI-compatible API.
type OpenRouter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newOpenRouter(settings config.Provider) *OpenRouter {
	base := settings.BaseURL
	if base == "" {
		base = "https://openrouter.ai/api/v1"
	}
	return &OpenRouter{
		apiKey:  settings.APIKey,
		baseURL: strings.TrimRight(base, "/"),
		client:  httpClient(settings.TimeoutSeconds),
	}
}

func (o *OpenRouter) Name() string { return config.ProviderOpenRouter }

func (o *OpenRouter) Probe(ctx context.Context) error {
	if o.apiKey == "" {
		return fmt.Errorf("no API key configured")
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+o.apiKey)
	return retryWithBackoff(ctx, 2, func() error {
		return doProbe(ctx, o.client, o.baseURL+"/models", header)
	})
}
