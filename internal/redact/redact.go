package redact

import "github.com/tmuxbot/tmuxbot/internal/config"

const placeholder = "***"

// Key masks an API key for display, keeping just enough of it to tell keys
// apart: the first six and last four characters. Short values are fully
// masked.
func Key(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return placeholder
	}
	return key[:6] + "..." + key[len(key)-4:]
}

// Config returns a copy of cfg with every provider API key masked. The
// original is untouched; use the copy anywhere the configuration is printed
// or serialized for humans.
func Config(cfg config.Config) config.Config {
	out := cfg
	out.Providers = make(map[string]config.Provider, len(cfg.Providers))
	for name, p := range cfg.Providers {
		p.APIKey = Key(p.APIKey)
		out.Providers[name] = p
	}
	return out
}
