package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tmuxbot/tmuxbot/internal/config"
	"github.com/tmuxbot/tmuxbot/internal/envfile"
	"github.com/tmuxbot/tmuxbot/internal/logging"
)

const version = "0.3.0"

// Exit codes returned by Run.
const (
	ExitSuccess      = 0
	ExitIssues       = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "tmuxbot",
	Short: "TmuxBot configuration tooling",
	Long:  "TmuxBot resolves, validates, and migrates the layered configuration that routes chat requests to LLM providers.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	// Credentials may live in .env; load it before any command resolves
	// configuration. Real environment variables still win.
	if err := envfile.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tmuxbot version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "tmuxbot version %s\n", version)
	},
}

// newLogger builds the logger for CLI commands before configuration is
// resolved, keyed off TMUXBOT_ENV alone.
func newLogger() *zap.Logger {
	log, err := logging.New(os.Getenv("TMUXBOT_ENV"))
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// environmentOf returns the resolved profile, falling back to development
// for display when resolution has not happened.
func environmentOf(cfg config.Config) string {
	if cfg.Environment == "" {
		return config.EnvDevelopment
	}
	return cfg.Environment
}
