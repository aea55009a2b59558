package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runSetupWizard runs the interactive configuration wizard.
	runSetupWizard = wizard.RunSetup

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	cfg, err := runSetupWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("provision - bot hosting web deployment")
	fmt.Println("======================================")
	fmt.Println()
	fmt.Println("This wizard creates a provisioning configuration with sensible defaults.")
	fmt.Println("Secrets are asked for but never written to the file; supply them via")
	fmt.Println("the environment at apply time, or answer the prompts again.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Domain:      %s\n", cfg.Domain)
	fmt.Printf("  Repository:  %s (%s)\n", cfg.RepoURL, cfg.Branch)
	fmt.Printf("  Database:    %s\n", cfg.Database.Engine)
	fmt.Printf("  Install dir: %s\n", cfg.AppDir)
	fmt.Printf("  Service:     %s\n", cfg.ServiceName)
	fmt.Println()

	fmt.Println("Next steps:")
	fmt.Printf("  sudo provision apply -c %s\n", outputPath)
	fmt.Println()
}
