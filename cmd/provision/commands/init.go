package commands

import (
	"github.com/spf13/cobra"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/cmd/provision/handlers"
)

// Init returns the command for interactively creating a provisioning
// configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "provision.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a provisioning configuration",
		Long: `Interactively create a provisioning configuration file.

This command asks about:

  - The site domain
  - Repository URL and branch
  - Database engine (SQLite or PostgreSQL) and credentials
  - Google OAuth client credentials
  - The Flask session secret key

Secrets are collected so the wizard can validate them, but they are
never written to the config file. Supply them at apply time via the
environment (SECRET_KEY, GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET,
DB_PASSWORD) or answer the prompts again.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "provision.yaml", "Output file path")

	return cmd
}
