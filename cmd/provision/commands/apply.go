package commands

import (
	"github.com/spf13/cobra"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/cmd/provision/handlers"
)

// Apply returns the command that provisions the application on this host.
//
// The command walks the full deployment sequence in order: system
// packages, the database (PostgreSQL engine only), the git checkout,
// the .env secrets file, the Python environment, schema migrations,
// the Nginx site, and the systemd service. Every step checks for the
// resource it creates and skips work that is already done, so the
// command can be re-run safely after a partial failure.
//
// Optional flags:
//
//	--config, -c: Path to a provisioning YAML file (default: auto-detect provision.yaml)
//	--non-interactive: Fail on missing inputs instead of prompting
//	--skip-checks: Skip the tool availability preflight
//
// Environment variables override file values; see 'provision init' for
// the full list (APP_DOMAIN, SECRET_KEY, GOOGLE_CLIENT_ID, ...).
func Apply() *cobra.Command {
	var (
		configPath     string
		nonInteractive bool
		skipChecks     bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Provision or update the application deployment",
		Long: `Provision or update the application deployment on this host.

This command installs system packages, checks out the application,
writes its secrets, runs database migrations, and wires up Nginx and
systemd. It must run as root.

If no config file is specified, it looks for provision.yaml in the
current directory. Use 'provision init' to create one. Missing inputs
are prompted for interactively; secrets are always read from the
environment or a prompt, never stored in the config file.

Examples:
  # Deploy using provision.yaml in the current directory
  provision apply

  # Deploy using a specific config file
  provision apply -c staging.yaml

  # Unattended deploy; all inputs must come from file or environment
  provision apply --non-interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), handlers.ApplyOptions{
				ConfigPath:     configPath,
				NonInteractive: nonInteractive,
				SkipChecks:     skipChecks,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: provision.yaml)")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Fail on missing inputs instead of prompting")
	cmd.Flags().BoolVar(&skipChecks, "skip-checks", false, "Skip tool availability checks")

	return cmd
}
