package redact

import (
	"testing"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "sk-12345", "***"},
		{"long", "sk-abcdef0123456789wxyz", "sk-abc...wxyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfigMasksAllProviders(t *testing.T) {
	cfg := config.Config{
		Providers: map[string]config.Provider{
			"openai":    {APIKey: "sk-abcdef0123456789wxyz", Enabled: true},
			"anthropic": {APIKey: "short"},
		},
	}

	masked := Config(cfg)

	if masked.Providers["openai"].APIKey != "sk-abc...wxyz" {
		t.Errorf("openai key = %q", masked.Providers["openai"].APIKey)
	}
	if masked.Providers["anthropic"].APIKey != "***" {
		t.Errorf("anthropic key = %q", masked.Providers["anthropic"].APIKey)
	}
	// The original must be untouched.
	if cfg.Providers["openai"].APIKey != "sk-abcdef0123456789wxyz" {
		t.Error("Config mutated its input")
	}
	// Non-credential fields survive.
	if !masked.Providers["openai"].Enabled {
		t.Error("Enabled flag lost during masking")
	}
}
