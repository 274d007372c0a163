package config

import "testing"

// base returns a minimal valid config for mutation in tests.
func base() Config {
	return Config{
		Environment: EnvDevelopment,
		CostLimits:  CostLimits{DailyUSD: 10, PerRequestUSD: 1},
		Providers: map[string]Provider{
			ProviderOpenAI: {APIKey: "sk-test", Enabled: true},
		},
		Agents: map[string]Agent{
			"primary": {Provider: ProviderOpenAI, Model: "gpt-4o"},
		},
	}
}

func findIssue(issues []Issue, kind, field string) *Issue {
	for i := range issues {
		if issues[i].Kind == kind && issues[i].Field == field {
			return &issues[i]
		}
	}
	return nil
}

func TestValidateCleanConfig(t *testing.T) {
	if issues := Validate(base()); len(issues) != 0 {
		t.Errorf("Validate = %v, want no issues", issues)
	}
}

func TestValidateUnknownEnvironment(t *testing.T) {
	cfg := base()
	cfg.Environment = "prod"
	issues := Validate(cfg)
	if findIssue(issues, IssueInvalidValue, "environment") == nil {
		t.Errorf("missing environment issue in %v", issues)
	}
}

func TestValidateCostLimits(t *testing.T) {
	tests := []struct {
		name   string
		limits CostLimits
		field  string
	}{
		{"negative daily", CostLimits{DailyUSD: -1, PerRequestUSD: 0}, "cost_limits.daily_usd"},
		{"negative per-request", CostLimits{DailyUSD: 10, PerRequestUSD: -0.5}, "cost_limits.per_request_usd"},
		{"per-request exceeds daily", CostLimits{DailyUSD: 5, PerRequestUSD: 6}, "cost_limits.per_request_usd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			cfg.CostLimits = tt.limits
			issues := Validate(cfg)
			if findIssue(issues, IssueInvalidValue, tt.field) == nil {
				t.Errorf("missing issue for %s in %v", tt.field, issues)
			}
		})
	}
}

func TestValidateEnabledProviderWithoutKey(t *testing.T) {
	cfg := base()
	cfg.Providers[ProviderAnthropic] = Provider{Enabled: true}
	issues := Validate(cfg)
	if findIssue(issues, IssueMissingKey, "providers.anthropic.api_key") == nil {
		t.Errorf("missing api_key issue in %v", issues)
	}
}

func TestValidateAgentReferencesProviderWithoutCredentials(t *testing.T) {
	// An agent mapped to anthropic while no Anthropic credentials exist in
	// any source is a missing-key error.
	cfg := base()
	cfg.Providers[ProviderAnthropic] = Provider{Enabled: false}
	cfg.Agents["researcher"] = Agent{Provider: ProviderAnthropic, Model: "claude-sonnet-4-20250514"}

	issues := Validate(cfg)
	issue := findIssue(issues, IssueMissingKey, "providers.anthropic.api_key")
	if issue == nil {
		t.Fatalf("missing credentials issue in %v", issues)
	}
	if issue.Severity != SeverityError {
		t.Errorf("Severity = %q, want error", issue.Severity)
	}
}

func TestValidateDanglingAgentProvider(t *testing.T) {
	cfg := base()
	cfg.Agents["ghost"] = Agent{Provider: "mistral"}
	issues := Validate(cfg)
	if findIssue(issues, IssueDanglingReference, "agents.ghost.provider") == nil {
		t.Errorf("missing dangling reference issue in %v", issues)
	}
}

func TestValidateDisabledProviderIsWarning(t *testing.T) {
	cfg := base()
	cfg.Providers[ProviderOpenRouter] = Provider{APIKey: "sk-or", Enabled: false}
	cfg.Agents["backup"] = Agent{Provider: ProviderOpenRouter}

	issues := Validate(cfg)
	issue := findIssue(issues, IssueDanglingReference, "agents.backup.provider")
	if issue == nil {
		t.Fatalf("missing disabled-provider issue in %v", issues)
	}
	if issue.Severity != SeverityWarning {
		t.Errorf("Severity = %q, want warning", issue.Severity)
	}
}

func TestValidateDanglingFallback(t *testing.T) {
	cfg := base()
	agent := cfg.Agents["primary"]
	agent.Fallbacks = []string{ProviderOpenAI, "nonexistent"}
	cfg.Agents["primary"] = agent

	issues := Validate(cfg)
	if findIssue(issues, IssueDanglingReference, "agents.primary.fallbacks[1]") == nil {
		t.Errorf("missing fallback issue in %v", issues)
	}
}

func TestValidateEmptyModelMapping(t *testing.T) {
	cfg := base()
	cfg.ModelMappings = map[string]string{"gpt-4o": ""}
	issues := Validate(cfg)
	if findIssue(issues, IssueInvalidValue, "model_mappings.gpt-4o") == nil {
		t.Errorf("missing model mapping issue in %v", issues)
	}
}
