package wizard

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
)

// Function variable for dependency injection in tests.
var isInteractive = defaultIsInteractive

func defaultIsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RunSetup walks through the full configuration interactively and returns
// the collected config with defaults applied.
func RunSetup(ctx context.Context) (*config.Config, error) {
	if !isInteractive() {
		return nil, fmt.Errorf("setup wizard requires a terminal; write %s by hand for unattended use", config.DefaultConfigFile)
	}

	cfg := &config.Config{}
	cfg.ApplyDefaults()

	if err := runSiteGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	if err := runRepositoryGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}
	if err := runDatabaseGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := runOAuthGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("oauth: %w", err)
	}
	if err := runSecretGroup(ctx, cfg); err != nil {
		return nil, fmt.Errorf("secrets: %w", err)
	}

	return cfg, nil
}

// CollectMissing prompts for required values the config does not have yet.
// In a non-interactive context it returns a MissingInputError naming the
// absent keys instead of blocking on a prompt that can never be answered.
func CollectMissing(ctx context.Context, cfg *config.Config) error {
	missing := cfg.MissingRequired()
	if len(missing) == 0 {
		return nil
	}

	if !isInteractive() {
		return &MissingInputError{Keys: missing}
	}

	if cfg.Domain == "" {
		if err := runSiteGroup(ctx, cfg); err != nil {
			return fmt.Errorf("site: %w", err)
		}
	}
	if cfg.UsesPostgres() && (cfg.Database.Name == "" || cfg.Database.User == "" || cfg.Database.Password == "") {
		if err := runDatabaseCredentialsGroup(ctx, cfg); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if cfg.OAuth.ClientID == "" || cfg.OAuth.ClientSecret == "" {
		if err := runOAuthGroup(ctx, cfg); err != nil {
			return fmt.Errorf("oauth: %w", err)
		}
	}
	if cfg.SecretKey == "" {
		if err := runSecretGroup(ctx, cfg); err != nil {
			return fmt.Errorf("secrets: %w", err)
		}
	}

	if still := cfg.MissingRequired(); len(still) > 0 {
		return &MissingInputError{Keys: still}
	}
	return nil
}
