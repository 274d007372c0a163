// Package providers implements connectivity probes for the LLM vendors
// tmuxbot dispatches to (OpenAI, OpenRouter, Anthropic).
//
// A probe lists the vendor's models using the configured credentials and
// classifies the outcome: auth failures (401/403) are terminal, rate limits
// (429) are retried with exponential backoff, anything else non-200 is a
// plain error. Probes back the `tmuxbot setup --test-providers` check; they
// never send prompt content.
package providers
