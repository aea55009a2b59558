package app

import (
	"fmt"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/secrets"
)

// Secrets materializes the application's .env file from the collected
// inputs. The file is rewritten completely on every run.
type Secrets struct{}

// NewSecrets creates the secrets materialization phase.
func NewSecrets() *Secrets {
	return &Secrets{}
}

// Name implements provisioning.Phase.
func (s *Secrets) Name() string { return "secrets" }

// Idempotent implements provisioning.Phase.
func (s *Secrets) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (s *Secrets) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	bindings := []secrets.Binding{
		{Key: "SECRET_KEY", Value: cfg.SecretKey},
		{Key: "GOOGLE_CLIENT_ID", Value: cfg.OAuth.ClientID},
		{Key: "GOOGLE_CLIENT_SECRET", Value: cfg.OAuth.ClientSecret},
	}

	if cfg.UsesPostgres() {
		bindings = append(bindings,
			secrets.Binding{Key: "DATABASE_URL", Value: ctx.State.DatabaseURL},
			secrets.Binding{Key: "DB_NAME", Value: cfg.Database.Name},
			secrets.Binding{Key: "DB_USER", Value: cfg.Database.User},
			secrets.Binding{Key: "DB_PASSWORD", Value: cfg.Database.Password},
		)
	}

	path := cfg.EnvFilePath()
	if err := secrets.Write(ctx.Host, path, bindings); err != nil {
		return fmt.Errorf("failed to materialize secrets: %w", err)
	}

	ctx.State.EnvFile = path
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "secrets file", path)
	return nil
}
