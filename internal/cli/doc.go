// Package cli wires together the Cobra command tree for the tmuxbot binary.
//
// It defines the root command and all subcommands (config, setup, migrate,
// version), binds flags, resolves configuration, and returns deterministic
// exit codes: 0 success, 1 validation findings, 2 usage error, 3 provider
// authentication failure, 4 runtime error.
package cli
