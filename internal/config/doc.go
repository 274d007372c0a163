// Package config resolves tmuxbot configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. Environment variables (TMUXBOT_ENV, TMUXBOT_MODEL, provider API keys, ...)
//  2. Environment profile file (config/environments/<profile>.yaml)
//  3. Agents file (config/agents/agents.yaml)
//  4. Provider files (config/providers/*.yaml)
//  5. Main file: config.yaml, or legacy config.json when no config.yaml exists
//  6. Built-in per-profile defaults
//
// When both config.yaml and config.json exist, config.yaml takes precedence
// in full: the JSON file is never merged key-by-key.
//
// Each source implements [Source] and yields a [Partial] fragment; [Resolve]
// deep-merges the fragments (highest-priority source wins per key, lower
// sources fill gaps only) and decodes the result into an immutable [Config].
// Use [Validate] for semantic checks beyond the hard requirements Resolve
// enforces itself.
package config
