package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmuxbot/tmuxbot/internal/config"
	"github.com/tmuxbot/tmuxbot/internal/envfile"
	"github.com/tmuxbot/tmuxbot/internal/output"
	"github.com/tmuxbot/tmuxbot/internal/providers"
	"github.com/tmuxbot/tmuxbot/internal/redact"
)

var (
	setupValidate      bool
	setupCreateEnv     bool
	setupTestProviders bool
	setupFullCheck     bool
	setupFiles         bool
	setupFormat        string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up, validate, and test the tmuxbot configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !setupValidate && !setupCreateEnv && !setupTestProviders && !setupFullCheck && !setupFiles {
			return cmd.Help()
		}

		ok := true
		if setupCreateEnv {
			ok = createEnv() && ok
		}
		if setupFiles {
			ok = createMissingConfigs() && ok
		}
		if setupValidate || setupFullCheck {
			ok = checkConfigFiles() && ok
			ok = checkEnvironmentVariables() && ok
			ok = runValidation() && ok
		}
		if setupTestProviders || setupFullCheck {
			ok = testProviders(cmd.Context()) && ok
		}

		if !ok && exitCode == ExitSuccess {
			exitCode = ExitIssues
		}
		return nil
	},
}

func createEnv() bool {
	if err := envfile.WriteTemplate(".env.template", false); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing .env.template: %v\n", err)
		return false
	}
	if err := envfile.Create(".env.template", ".env", false); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating .env: %v\n", err)
		return false
	}
	fmt.Fprintln(os.Stdout, "Created .env from template. Edit it and add your API keys.")
	return true
}

func createMissingConfigs() bool {
	for _, path := range []string{"config.yaml", "config.json"} {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stdout, "Main config already present: %s\n", path)
			return true
		}
	}
	if err := os.WriteFile("config.yaml", []byte(config.TemplateYAML), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config.yaml: %v\n", err)
		return false
	}
	fmt.Fprintln(os.Stdout, "Created config.yaml template")
	return true
}

// checkConfigFiles reports which of the standard configuration files are
// present. Only a main config file is required; everything else refines it.
func checkConfigFiles() bool {
	fmt.Fprintln(os.Stdout, "Checking configuration files...")

	optional := []string{
		filepath.Join("config", "providers", "openai.yaml"),
		filepath.Join("config", "providers", "openrouter.yaml"),
		filepath.Join("config", "providers", "anthropic.yaml"),
		filepath.Join("config", "agents", "agents.yaml"),
		filepath.Join("config", "environments", "development.yaml"),
		filepath.Join("config", "environments", "staging.yaml"),
		filepath.Join("config", "environments", "production.yaml"),
		".env",
		".env.template",
	}

	hasMain := false
	for _, path := range []string{"config.yaml", "config.json"} {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stdout, "  found    %s\n", path)
			hasMain = true
		}
	}
	if !hasMain {
		fmt.Fprintln(os.Stdout, "  missing  config.yaml (run `tmuxbot config init`)")
	}

	for _, path := range optional {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stdout, "  found    %s\n", path)
		} else {
			fmt.Fprintf(os.Stdout, "  absent   %s (optional)\n", path)
		}
	}
	return hasMain
}

// checkEnvironmentVariables reports which provider keys are set, masked for
// display. At least one of the OpenAI/OpenRouter keys must be present.
func checkEnvironmentVariables() bool {
	fmt.Fprintln(os.Stdout, "Checking environment variables...")

	vars := []struct {
		name string
		desc string
	}{
		{"OPENAI_API_KEY", "OpenAI API access"},
		{"OPENROUTER_API_KEY", "OpenRouter API access (optional)"},
		{"ANTHROPIC_API_KEY", "Anthropic API access (optional)"},
	}

	found := map[string]bool{}
	for _, v := range vars {
		value := os.Getenv(v.name)
		found[v.name] = value != ""
		if value != "" {
			fmt.Fprintf(os.Stdout, "  set      %s = %s\n", v.name, redact.Key(value))
		} else {
			fmt.Fprintf(os.Stdout, "  unset    %s (%s)\n", v.name, v.desc)
		}
	}

	if found["OPENAI_API_KEY"] || found["OPENROUTER_API_KEY"] {
		return true
	}
	fmt.Fprintln(os.Stderr, "No provider API keys found; set OPENAI_API_KEY or OPENROUTER_API_KEY")
	return false
}

func runValidation() bool {
	report, err := validateReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error validating configuration: %v\n", err)
		return false
	}
	if err := output.WriteReport(report, setupFormat, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return false
	}
	return report.Errors() == 0
}

// testProviders probes every provider that has credentials configured.
func testProviders(ctx context.Context) bool {
	fmt.Fprintln(os.Stdout, "Testing providers...")

	cfg, err := config.Load(".", newLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving configuration: %v\n", err)
		return false
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ok := true
	probed := 0
	for _, name := range config.KnownProviders() {
		settings, present := cfg.Providers[name]
		if !present || settings.APIKey == "" {
			fmt.Fprintf(os.Stdout, "  skipped  %s (no credentials)\n", name)
			continue
		}

		prober, err := providers.New(name, settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  error    %s: %v\n", name, err)
			ok = false
			continue
		}

		probeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = prober.Probe(probeCtx)
		cancel()
		probed++

		switch {
		case err == nil:
			fmt.Fprintf(os.Stdout, "  ok       %s\n", name)
		case providers.IsAuthError(err):
			fmt.Fprintf(os.Stderr, "  auth     %s: credentials rejected\n", name)
			exitCode = ExitAuthError
			ok = false
		default:
			fmt.Fprintf(os.Stderr, "  error    %s: %v\n", name, err)
			ok = false
		}
	}

	if probed == 0 {
		fmt.Fprintln(os.Stderr, "No providers with credentials to test")
		return false
	}
	return ok
}

func init() {
	setupCmd.Flags().BoolVar(&setupValidate, "validate", false, "validate all configuration sources")
	setupCmd.Flags().BoolVar(&setupCreateEnv, "create-env", false, "create .env from .env.template")
	setupCmd.Flags().BoolVar(&setupTestProviders, "test-providers", false, "probe providers with configured credentials")
	setupCmd.Flags().BoolVar(&setupFullCheck, "full-check", false, "run every check")
	setupCmd.Flags().BoolVar(&setupFiles, "setup", false, "create missing configuration files")
	setupCmd.Flags().StringVar(&setupFormat, "format", "text", "validation report format: text or json")
}
