package config

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeEnv returns a Lookup func backed by a map.
func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// staticSource is a Source returning a fixed fragment.
type staticSource struct {
	name string
	frag Partial
	err  error
}

func (s *staticSource) Name() string           { return s.name }
func (s *staticSource) Load() (Partial, error) { return s.frag, s.err }

func TestResolvePrecedence(t *testing.T) {
	// Highest-priority source defining a key wins; lower sources fill gaps.
	sources := []Source{
		&staticSource{name: "high", frag: Partial{
			"default_model": "gpt-4o-mini",
			"providers": Partial{
				"openai": Partial{"api_key": "sk-high"},
			},
		}},
		&staticSource{name: "mid", frag: Partial{
			"default_model": "gpt-4o",
			"max_history":   42,
			"providers": Partial{
				"openai": Partial{"api_key": "sk-mid", "default_model": "gpt-4.1"},
			},
		}},
		&staticSource{name: "low", frag: Partial{
			"conversation_timeout": 600,
		}},
	}

	cfg, err := Resolve(sources)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if cfg.DefaultModel != "gpt-4o-mini" {
		t.Errorf("DefaultModel = %q, want %q (highest source wins)", cfg.DefaultModel, "gpt-4o-mini")
	}
	if cfg.Providers["openai"].APIKey != "sk-high" {
		t.Errorf("openai api_key = %q, want %q", cfg.Providers["openai"].APIKey, "sk-high")
	}
	// Nested maps merge: the mid source's provider default_model survives.
	if cfg.Providers["openai"].DefaultModel != "gpt-4.1" {
		t.Errorf("openai default_model = %q, want %q (gap fill)", cfg.Providers["openai"].DefaultModel, "gpt-4.1")
	}
	if cfg.MaxHistory != 42 {
		t.Errorf("MaxHistory = %d, want 42", cfg.MaxHistory)
	}
	if cfg.ConversationTimeout != 600 {
		t.Errorf("ConversationTimeout = %d, want 600", cfg.ConversationTimeout)
	}
	// Keys defined nowhere fall through to built-in defaults.
	if cfg.Environment != EnvDevelopment {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvDevelopment)
	}
	if cfg.CostLimits.DailyUSD != 10.0 {
		t.Errorf("DailyUSD = %v, want 10.0 (development default)", cfg.CostLimits.DailyUSD)
	}
}

func TestResolveProductionDefaults(t *testing.T) {
	env := &EnvSource{Lookup: fakeEnv(map[string]string{
		"TMUXBOT_ENV":    "production",
		"OPENAI_API_KEY": "sk-test-0123456789",
	})}

	cfg, err := Resolve([]Source{env})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if cfg.Environment != EnvProduction {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvProduction)
	}
	if cfg.CostLimits.DailyUSD != 100.0 {
		t.Errorf("DailyUSD = %v, want 100.0 (production default)", cfg.CostLimits.DailyUSD)
	}
	if cfg.CostLimits.PerRequestUSD != 5.0 {
		t.Errorf("PerRequestUSD = %v, want 5.0", cfg.CostLimits.PerRequestUSD)
	}
	if cfg.CostOptimization {
		t.Error("CostOptimization should default off in production")
	}
}

func TestResolveEnvOverridesDailyLimit(t *testing.T) {
	env := &EnvSource{Lookup: fakeEnv(map[string]string{
		"TMUXBOT_ENV":             "production",
		"TMUXBOT_DAILY_LIMIT_USD": "50",
		"OPENAI_API_KEY":          "sk-test-0123456789",
	})}

	cfg, err := Resolve([]Source{env})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if cfg.CostLimits.DailyUSD != 50.0 {
		t.Errorf("DailyUSD = %v, want 50.0 (env var overrides profile default)", cfg.CostLimits.DailyUSD)
	}
	// Per-request limit still comes from the profile default.
	if cfg.CostLimits.PerRequestUSD != 5.0 {
		t.Errorf("PerRequestUSD = %v, want 5.0", cfg.CostLimits.PerRequestUSD)
	}
}

func TestResolveMissingRequiredKey(t *testing.T) {
	// openai is enabled by default but no source supplies its key.
	_, err := Resolve(nil)
	if err == nil {
		t.Fatal("Resolve should fail when an enabled provider has no API key")
	}
	missing, ok := err.(*MissingKeyError)
	if !ok {
		t.Fatalf("error type = %T, want *MissingKeyError", err)
	}
	if missing.Key != "providers.openai.api_key" {
		t.Errorf("Key = %q, want %q", missing.Key, "providers.openai.api_key")
	}
}

func TestResolveSourceErrorAborts(t *testing.T) {
	sources := []Source{
		&staticSource{name: "bad", err: &SyntaxError{Path: "config.yaml", Err: os.ErrInvalid}},
	}
	if _, err := Resolve(sources); err == nil {
		t.Fatal("Resolve should propagate source errors")
	}
}

func TestResolveExplicitFalseWins(t *testing.T) {
	// A higher source setting a bool to false must override a lower true.
	sources := []Source{
		&staticSource{name: "high", frag: Partial{
			"cost_optimization": false,
			"providers":         Partial{"openai": Partial{"api_key": "sk-x"}},
		}},
		&staticSource{name: "low", frag: Partial{"cost_optimization": true}},
	}
	cfg, err := Resolve(sources)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if cfg.CostOptimization {
		t.Error("CostOptimization = true, want false (explicit false wins)")
	}
}

func TestLoadFromDirectory(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), `
environment: staging
providers:
  openai:
    api_key: sk-from-yaml-0123456789
agents:
  primary:
    provider: openai
    model: gpt-4o
`)

	cfg, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Environment != EnvStaging {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvStaging)
	}
	if cfg.CostLimits.DailyUSD != 50.0 {
		t.Errorf("DailyUSD = %v, want 50.0 (staging default)", cfg.CostLimits.DailyUSD)
	}
	if cfg.Agents["primary"].Model != "gpt-4o" {
		t.Errorf("primary model = %q, want gpt-4o", cfg.Agents["primary"].Model)
	}
}

// clearEnv blanks every variable the resolver reads so host settings cannot
// leak into tests that use the real environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TMUXBOT_ENV", "TMUXBOT_MODEL", "TMUXBOT_DAILY_LIMIT_USD",
		"TMUXBOT_PER_REQUEST_LIMIT_USD", "TMUXBOT_COST_OPTIMIZATION",
		"TMUXBOT_USE_OPENROUTER", "TMUXBOT_MAX_HISTORY",
		"TMUXBOT_CONVERSATION_TIMEOUT",
		"OPENAI_API_KEY", "OPENROUTER_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
