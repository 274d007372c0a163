// Package logging builds the zap logger used across tmuxbot, tuned per
// environment profile: JSON in production, console output elsewhere.
package logging
