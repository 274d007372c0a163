package config

import "fmt"

// Validate checks a resolved Config for semantic problems and returns every
// issue found. An empty slice means the configuration is sound. Unlike
// [Resolve], Validate never stops early: the CLI shows the full report.
func Validate(cfg Config) []Issue {
	var issues []Issue

	if !ValidEnvironment(cfg.Environment) {
		issues = append(issues, Issue{
			Kind:     IssueInvalidValue,
			Severity: SeverityError,
			Field:    "environment",
			Message:  fmt.Sprintf("unknown environment %q (want development, staging, or production)", cfg.Environment),
		})
	}

	issues = append(issues, validateCostLimits(cfg.CostLimits)...)
	issues = append(issues, validateProviders(cfg)...)
	issues = append(issues, validateAgents(cfg)...)

	for from, to := range cfg.ModelMappings {
		if to == "" {
			issues = append(issues, Issue{
				Kind:     IssueInvalidValue,
				Severity: SeverityError,
				Field:    "model_mappings." + from,
				Message:  "substitute model must not be empty",
			})
		}
	}

	return issues
}

func validateCostLimits(limits CostLimits) []Issue {
	var issues []Issue
	if limits.DailyUSD < 0 {
		issues = append(issues, Issue{
			Kind:     IssueInvalidValue,
			Severity: SeverityError,
			Field:    "cost_limits.daily_usd",
			Message:  fmt.Sprintf("must be non-negative, got %.2f", limits.DailyUSD),
		})
	}
	if limits.PerRequestUSD < 0 {
		issues = append(issues, Issue{
			Kind:     IssueInvalidValue,
			Severity: SeverityError,
			Field:    "cost_limits.per_request_usd",
			Message:  fmt.Sprintf("must be non-negative, got %.2f", limits.PerRequestUSD),
		})
	}
	if limits.DailyUSD >= 0 && limits.PerRequestUSD >= 0 && limits.PerRequestUSD > limits.DailyUSD {
		issues = append(issues, Issue{
			Kind:     IssueInvalidValue,
			Severity: SeverityError,
			Field:    "cost_limits.per_request_usd",
			Message:  fmt.Sprintf("per-request limit %.2f exceeds daily limit %.2f", limits.PerRequestUSD, limits.DailyUSD),
		})
	}
	return issues
}

func validateProviders(cfg Config) []Issue {
	var issues []Issue
	for name, p := range cfg.Providers {
		field := "providers." + name
		if p.Enabled && p.APIKey == "" {
			issues = append(issues, Issue{
				Kind:     IssueMissingKey,
				Severity: SeverityError,
				Field:    field + ".api_key",
				Message:  "provider is enabled but has no API key",
			})
		}
		if p.TimeoutSeconds < 0 {
			issues = append(issues, Issue{
				Kind:     IssueInvalidValue,
				Severity: SeverityError,
				Field:    field + ".timeout_seconds",
				Message:  fmt.Sprintf("must be non-negative, got %d", p.TimeoutSeconds),
			})
		}
	}
	return issues
}

func validateAgents(cfg Config) []Issue {
	var issues []Issue
	for name, agent := range cfg.Agents {
		field := "agents." + name
		p, ok := cfg.Providers[agent.Provider]
		switch {
		case agent.Provider == "":
			issues = append(issues, Issue{
				Kind:     IssueMissingKey,
				Severity: SeverityError,
				Field:    field + ".provider",
				Message:  "agent has no provider",
			})
		case !ok:
			issues = append(issues, Issue{
				Kind:     IssueDanglingReference,
				Severity: SeverityError,
				Field:    field + ".provider",
				Message:  fmt.Sprintf("references undefined provider %q", agent.Provider),
			})
		case p.APIKey == "":
			issues = append(issues, Issue{
				Kind:     IssueMissingKey,
				Severity: SeverityError,
				Field:    "providers." + agent.Provider + ".api_key",
				Message:  fmt.Sprintf("agent %q uses provider %q but no credentials are configured", name, agent.Provider),
			})
		case !p.Enabled:
			issues = append(issues, Issue{
				Kind:     IssueDanglingReference,
				Severity: SeverityWarning,
				Field:    field + ".provider",
				Message:  fmt.Sprintf("references disabled provider %q", agent.Provider),
			})
		}

		for i, fb := range agent.Fallbacks {
			if _, ok := cfg.Providers[fb]; !ok {
				issues = append(issues, Issue{
					Kind:     IssueDanglingReference,
					Severity: SeverityError,
					Field:    fmt.Sprintf("%s.fallbacks[%d]", field, i),
					Message:  fmt.Sprintf("references undefined provider %q", fb),
				})
			}
		}
	}
	return issues
}
