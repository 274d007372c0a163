package config

// TemplateYAML is the starter config.yaml written by `tmuxbot config init`.
// Placeholder keys keep validation honest: the file resolves but fails
// validation until real credentials are supplied.
const TemplateYAML = `# TmuxBot configuration
# Values here are overridden by config/environments/<profile>.yaml,
# config/agents/agents.yaml, config/providers/*.yaml, and environment
# variables, in increasing order of precedence.

environment: development
default_model: gpt-4o
use_openrouter: false

providers:
  openai:
    api_key: your-openai-api-key-here
    default_model: gpt-4o
    enabled: true
  openrouter:
    api_key: ""
    default_model: openai/gpt-4o
    enabled: false
  anthropic:
    api_key: ""
    default_model: claude-sonnet-4-20250514
    enabled: false

agents:
  primary:
    provider: openai
    model: gpt-4o
    instructions: You are TmuxBot's primary coordination agent.
  coder:
    provider: openai
    model: gpt-4o
    instructions: Focus on code quality and best practices.
    fallbacks: [openrouter]

# Cheaper substitutes applied when cost optimization is active
# (never in production).
model_mappings:
  gpt-4o: gpt-4o-mini

max_history: 100
conversation_timeout: 300
`
