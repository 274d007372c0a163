package model

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// Selection is the provider/model pair chosen for an agent.
type Selection struct {
	Agent    string
	Provider string
	Model    string
	// Substituted is true when cost optimization swapped the requested
	// model for a cheaper one.
	Substituted bool
}

// Factory picks the provider and model for each agent from the resolved
// configuration. It holds the Config by value; selections are deterministic
// for the lifetime of the process.
type Factory struct {
	cfg config.Config
	log *zap.Logger
}

// NewFactory creates a Factory. A nil logger disables logging.
func NewFactory(cfg config.Config, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{cfg: cfg, log: log}
}

// Select resolves the agent's mapping to a concrete provider and model.
//
// The agent's own model wins; otherwise the provider's default model, then
// the global default. When use_openrouter is set and OpenRouter has
// credentials, OpenAI-bound agents are routed through OpenRouter instead.
// When cost optimization is active outside production, model mappings
// substitute a cheaper model for the requested one.
func (f *Factory) Select(agent string) (Selection, error) {
	mapping, ok := f.cfg.Agents[agent]
	if !ok {
		return Selection{}, fmt.Errorf("unknown agent: %s", agent)
	}

	providerName := mapping.Provider
	if f.cfg.UseOpenRouter && providerName == config.ProviderOpenAI {
		if or, ok := f.cfg.Providers[config.ProviderOpenRouter]; ok && or.APIKey != "" {
			providerName = config.ProviderOpenRouter
		}
	}

	provider, ok := f.cfg.Providers[providerName]
	if !ok {
		return Selection{}, fmt.Errorf("agent %s references undefined provider %s", agent, providerName)
	}

	model := mapping.Model
	if model == "" {
		model = provider.DefaultModel
	}
	if model == "" {
		model = f.cfg.DefaultModel
	}
	if model == "" {
		return Selection{}, fmt.Errorf("no model configured for agent %s", agent)
	}

	sel := Selection{Agent: agent, Provider: providerName, Model: model}
	if f.optimizing() {
		if cheaper, ok := f.cfg.ModelMappings[model]; ok && cheaper != "" {
			sel.Model = cheaper
			sel.Substituted = true
		}
	}

	f.log.Debug("selected model",
		zap.String("agent", sel.Agent),
		zap.String("provider", sel.Provider),
		zap.String("model", sel.Model),
		zap.Bool("substituted", sel.Substituted))
	return sel, nil
}

// optimizing reports whether model substitution applies. Production never
// substitutes, regardless of the cost_optimization flag.
func (f *Factory) optimizing() bool {
	return f.cfg.CostOptimization && f.cfg.Environment != config.EnvProduction
}
