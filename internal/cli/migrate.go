package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tmuxbot/tmuxbot/internal/migrate"
)

var migrateForce bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Convert legacy config.json (and provider JSON files) to YAML",
	Long: `Converts config.json to config.yaml and any config/providers/*.json
files to YAML. Keys and values are preserved verbatim and the JSON
sources are kept in place; legacy _comment fields become YAML comments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		migratedAny := false

		if _, err := os.Stat("config.json"); err == nil {
			err := migrate.File("config.json", "config.yaml", migrateForce)
			switch {
			case errors.Is(err, migrate.ErrExists):
				fmt.Fprintln(os.Stderr, "config.yaml already exists (use --force to overwrite)")
			case err != nil:
				return err
			default:
				fmt.Fprintln(os.Stdout, "Migrated config.json -> config.yaml")
				migratedAny = true
			}
		} else {
			fmt.Fprintln(os.Stdout, "No config.json found - nothing to migrate")
		}

		providerDir := filepath.Join("config", "providers")
		if _, err := os.Stat(providerDir); err == nil {
			n, err := migrate.Dir(providerDir)
			if err != nil {
				return err
			}
			if n > 0 {
				fmt.Fprintf(os.Stdout, "Migrated %d provider file(s) in %s\n", n, providerDir)
				migratedAny = true
			}
		}

		if migratedAny {
			fmt.Fprintln(os.Stdout, "Run `tmuxbot config validate` to check the result.")
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite existing YAML files")
}
