package providers

import (
	"context"
	"fmt"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// Prober checks that a provider's credentials and endpoint work by issuing
// one cheap authenticated request (listing models).
type Prober interface {
	Probe(ctx context.Context) error
	Name() string
}

// New creates a prober for the named provider using its resolved settings.
func New(name string, settings config.Provider) (Prober, error) {
	switch name {
	case config.ProviderOpenAI:
		return newOpenAI(settings), nil
	case config.ProviderOpenRouter:
		return newOpenRouter(settings), nil
	case config.ProviderAnthropic:
		return newAnthropic(settings), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}
