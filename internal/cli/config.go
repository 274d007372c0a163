package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tmuxbot/tmuxbot/internal/config"
	"github.com/tmuxbot/tmuxbot/internal/output"
	"github.com/tmuxbot/tmuxbot/internal/redact"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tmuxbot configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range []string{"config.yaml", "config.json"} {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(os.Stderr, "Config file already exists at %s\n", path)
				return nil
			}
		}

		if err := os.WriteFile("config.yaml", []byte(config.TemplateYAML), 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Fprintln(os.Stdout, "Config file created at config.yaml")
		return nil
	},
}

var configShowFormat string

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration with credentials masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".", newLogger())
		if err != nil {
			return err
		}

		masked := redact.Config(cfg)
		var data []byte
		if configShowFormat == "json" {
			data, err = jsonIndent(masked)
		} else {
			data, err = yaml.Marshal(masked)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var configValidateFormat string

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := validateReport()
		if err != nil {
			return err
		}
		if err := output.WriteReport(report, configValidateFormat, ""); err != nil {
			return err
		}
		if report.Errors() > 0 {
			exitCode = ExitIssues
		}
		return nil
	},
}

// validateReport resolves the standard source stack and runs validation.
// Resolution failures (syntax errors, missing required keys) become report
// issues rather than aborting, so the user sees one consolidated view.
func validateReport() (*output.Report, error) {
	log := newLogger()
	sources := config.DefaultSources(".", log)

	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name())
	}

	cfg, err := config.Resolve(sources)
	if err != nil {
		issue := config.Issue{
			Kind:     config.IssueInvalidValue,
			Severity: config.SeverityError,
			Field:    "(resolution)",
			Message:  err.Error(),
		}
		if missing, ok := err.(*config.MissingKeyError); ok {
			issue.Kind = config.IssueMissingKey
			issue.Field = missing.Key
			issue.Message = "required key is absent after merging all sources"
		}
		return &output.Report{
			Environment: config.EnvDevelopment,
			Sources:     names,
			Issues:      []config.Issue{issue},
		}, nil
	}

	return &output.Report{
		Environment: environmentOf(cfg),
		Sources:     names,
		Issues:      config.Validate(cfg),
	}, nil
}

func jsonIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml", "output format: yaml or json")
	configValidateCmd.Flags().StringVar(&configValidateFormat, "format", "text", "output format: text or json")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}
