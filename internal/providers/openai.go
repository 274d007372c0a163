package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// OpenAI probes OpenAI's API by listing models with the configured key.
type OpenAI struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newOpenAI(settings config.Provider) *OpenAI {
	base := settings.BaseURL
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	return &OpenAI{
		apiKey:  settings.APIKey,
		baseURL: strings.TrimRight(base, "/"),
		client:  httpClient(settings.TimeoutSeconds),
	}
}

func (o *OpenAI) Name() string { return config.ProviderOpenAI }

func (o *OpenAI) Probe(ctx context.Context) error {
	if o.apiKey == "" {
		return fmt.Errorf("no API key configured")
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+o.apiKey)
	return retryWithBackoff(ctx, 2, func() error {
		return doProbe(ctx, o.client, o.baseURL+"/models", header)
	})
}
