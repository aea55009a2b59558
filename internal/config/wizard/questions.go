package wizard

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
)

// Validation errors for the interactive wizard.
var (
	errDomainRequired       = errors.New("domain is required")
	errRepoRequired         = errors.New("repository URL is required")
	errDatabaseNameRequired = errors.New("database name is required")
	errDatabaseUserRequired = errors.New("database user is required")
	errPasswordRequired     = errors.New("password is required")
	errClientIDRequired     = errors.New("OAuth client ID is required")
	errClientSecretRequired = errors.New("OAuth client secret is required")
	errSecretKeyRequired    = errors.New("secret key is required")
)

func nonEmpty(err error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return err
		}
		return nil
	}
}

// runSiteGroup prompts for the public domain the site is served under.
func runSiteGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Domain").
				Description("Public hostname Nginx will serve the site under").
				Placeholder("bots.example.com").
				Value(&cfg.Domain).
				Validate(nonEmpty(errDomainRequired)),
		).Title("Site"),
	).RunWithContext(ctx)
}

// runRepositoryGroup prompts for the application checkout source.
func runRepositoryGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository URL").
				Description("Git repository the application is cloned from").
				Value(&cfg.RepoURL).
				Validate(nonEmpty(errRepoRequired)),
			huh.NewInput().
				Title("Branch").
				Value(&cfg.Branch),
		).Title("Repository"),
	).RunWithContext(ctx)
}

// runDatabaseGroup prompts for the datastore variant and, for the postgres
// variant, its credentials.
func runDatabaseGroup(ctx context.Context, cfg *config.Config) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database").
				Description("sqlite needs no server; postgres is provisioned by the pipeline").
				Options(
					huh.NewOption("SQLite (file-based, default)", config.EngineSQLite),
					huh.NewOption("PostgreSQL", config.EnginePostgres),
				).
				Value(&cfg.Database.Engine),
		).Title("Database"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if cfg.UsesPostgres() {
		return runDatabaseCredentialsGroup(ctx, cfg)
	}
	return nil
}

// runDatabaseCredentialsGroup prompts for postgres name, user and password.
func runDatabaseCredentialsGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Database Name").
				Placeholder("bots").
				Value(&cfg.Database.Name).
				Validate(nonEmpty(errDatabaseNameRequired)),
			huh.NewInput().
				Title("Database User").
				Value(&cfg.Database.User).
				Validate(nonEmpty(errDatabaseUserRequired)),
			huh.NewInput().
				Title("Database Password").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Database.Password).
				Validate(nonEmpty(errPasswordRequired)),
		).Title("Database Credentials"),
	).RunWithContext(ctx)
}

// runOAuthGroup prompts for the Google OAuth client the app logs users in with.
func runOAuthGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Google OAuth Client ID").
				Value(&cfg.OAuth.ClientID).
				Validate(nonEmpty(errClientIDRequired)),
			huh.NewInput().
				Title("Google OAuth Client Secret").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.OAuth.ClientSecret).
				Validate(nonEmpty(errClientSecretRequired)),
		).Title("Google OAuth"),
	).RunWithContext(ctx)
}

// runSecretGroup prompts for the application session secret.
func runSecretGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Secret Key").
				Description("Signs application sessions; use a long random string").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.SecretKey).
				Validate(nonEmpty(errSecretKeyRequired)),
		).Title("Secrets"),
	).RunWithContext(ctx)
}
