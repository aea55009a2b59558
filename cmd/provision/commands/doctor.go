package commands

import (
	"github.com/spf13/cobra"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/cmd/provision/handlers"
)

// Doctor returns the command for diagnosing the host before a deploy.
//
// Optional flags:
//
//	--config, -c: Path to a provisioning YAML file (default: auto-detect provision.yaml)
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose host readiness and configuration",
		Long: `Diagnose host readiness and configuration.

Checks that the required command line tools are installed, that the
process has root privilege, and that the configuration has every value
a deploy needs. Nothing on the host is changed.

Examples:
  # Check the host against provision.yaml
  provision doctor

  # Check against a specific config file
  provision doctor -c staging.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: provision.yaml)")

	return cmd
}
