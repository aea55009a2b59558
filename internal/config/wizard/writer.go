package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
)

// WriteConfig writes the collected configuration to a YAML file with a
// descriptive header. Secret values carry the `yaml:"-"` tag on the config
// struct and are never persisted; they are supplied per run via environment
// variables or prompts.
func WriteConfig(cfg *config.Config, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# Deployment configuration
# Generated by 'provision init' on %s
#
# Secrets (SECRET_KEY, GOOGLE_CLIENT_SECRET, DB_PASSWORD) are intentionally
# not stored here. Provide them via environment variables or let
# 'provision apply' prompt for them.
#
# Re-run with: provision apply --config %s
`, time.Now().Format("2006-01-02"), outputPath)
}
