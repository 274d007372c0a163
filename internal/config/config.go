package config

// Environment profiles. The profile controls built-in cost limits, logging
// verbosity, and whether cost optimization is on by default.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Provider names recognized by tmuxbot.
const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
)

// Config is the effective tmuxbot configuration after merging all sources.
// It is constructed once at startup by [Resolve] and never mutated afterwards;
// consumers receive it by value.
type Config struct {
	Environment         string              `yaml:"environment" json:"environment"`
	DefaultModel        string              `yaml:"default_model" json:"default_model"`
	UseOpenRouter       bool                `yaml:"use_openrouter" json:"use_openrouter"`
	CostOptimization    bool                `yaml:"cost_optimization" json:"cost_optimization"`
	MaxHistory          int                 `yaml:"max_history" json:"max_history"`
	ConversationTimeout int                 `yaml:"conversation_timeout" json:"conversation_timeout"`
	CostLimits          CostLimits          `yaml:"cost_limits" json:"cost_limits"`
	Providers           map[string]Provider `yaml:"providers" json:"providers"`
	Agents              map[string]Agent    `yaml:"agents" json:"agents"`
	ModelMappings       map[string]string   `yaml:"model_mappings" json:"model_mappings,omitempty"`
}

// Provider holds credentials and connection parameters for one LLM vendor.
type Provider struct {
	APIKey         string `yaml:"api_key" json:"api_key,omitempty"`
	BaseURL        string `yaml:"base_url" json:"base_url,omitempty"`
	DefaultModel   string `yaml:"default_model" json:"default_model,omitempty"`
	Enabled        bool   `yaml:"enabled" json:"enabled"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
}

// Agent maps a logical role to the provider and model it should use.
type Agent struct {
	Provider     string   `yaml:"provider" json:"provider"`
	Model        string   `yaml:"model" json:"model,omitempty"`
	Instructions string   `yaml:"instructions" json:"instructions,omitempty"`
	Fallbacks    []string `yaml:"fallbacks" json:"fallbacks,omitempty"`
}

// CostLimits are dollar ceilings enforced by the dispatch layer.
type CostLimits struct {
	DailyUSD      float64 `yaml:"daily_usd" json:"daily_usd"`
	PerRequestUSD float64 `yaml:"per_request_usd" json:"per_request_usd"`
}

// KnownProviders lists the provider names tmuxbot can dispatch to.
func KnownProviders() []string {
	return []string{ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic}
}

// ValidEnvironment reports whether env names one of the three profiles.
func ValidEnvironment(env string) bool {
	switch env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return true
	}
	return false
}

func defaultCostLimits(env string) CostLimits {
	switch env {
	case EnvProduction:
		return CostLimits{DailyUSD: 100.0, PerRequestUSD: 5.0}
	case EnvStaging:
		return CostLimits{DailyUSD: 50.0, PerRequestUSD: 2.0}
	default:
		return CostLimits{DailyUSD: 10.0, PerRequestUSD: 1.0}
	}
}

// Defaults returns the built-in configuration fragment for the given
// environment profile. It sits at the bottom of the source stack: every key
// it defines can be overridden by any file or environment variable.
func Defaults(env string) Partial {
	if !ValidEnvironment(env) {
		env = EnvDevelopment
	}
	limits := defaultCostLimits(env)
	return Partial{
		"environment":          env,
		"default_model":        "gpt-4o",
		"use_openrouter":       false,
		"cost_optimization":    env != EnvProduction,
		"max_history":          100,
		"conversation_timeout": 300,
		"cost_limits": Partial{
			"daily_usd":       limits.DailyUSD,
			"per_request_usd": limits.PerRequestUSD,
		},
		"providers": Partial{
			ProviderOpenAI: Partial{
				"base_url":        "https://api.openai.com/v1",
				"default_model":   "gpt-4o",
				"enabled":         true,
				"timeout_seconds": 60,
			},
			ProviderOpenRouter: Partial{
				"base_url":        "https://openrouter.ai/api/v1",
				"default_model":   "openai/gpt-4o",
				"enabled":         false,
				"timeout_seconds": 60,
			},
			ProviderAnthropic: Partial{
				"base_url":        "https://api.anthropic.com/v1",
				"default_model":   "claude-sonnet-4-20250514",
				"enabled":         false,
				"timeout_seconds": 60,
			},
		},
		"agents": Partial{
			"primary": Partial{
				"provider":     ProviderOpenAI,
				"instructions": "You are TmuxBot's primary coordination agent.",
			},
			"coder": Partial{
				"provider":     ProviderOpenAI,
				"instructions": "Focus on code quality and best practices.",
			},
		},
	}
}
