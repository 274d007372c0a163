// Tmuxbot's configuration CLI resolves, validates, and migrates the layered
// configuration that routes chat requests to LLM providers (OpenAI,
// OpenRouter, Anthropic).
//
// Usage:
//
//	tmuxbot config init        # write a starter config.yaml
//	tmuxbot config show        # print the effective config, keys masked
//	tmuxbot config validate    # semantic validation report
//	tmuxbot setup --full-check # files + env vars + validation + provider probes
//	tmuxbot setup --create-env # create .env from .env.template
//	tmuxbot migrate            # convert legacy config.json to config.yaml
package main
