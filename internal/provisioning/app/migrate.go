package app

import (
	"fmt"
	"strings"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
)

// Migrate runs the three-step schema migration: initialize the migration
// history (only once), generate a migration from the current model state,
// and apply anything pending. Against an up-to-date schema every step is
// a guarded no-op, so re-runs are safe.
type Migrate struct{}

// NewMigrate creates the schema migration phase.
func NewMigrate() *Migrate {
	return &Migrate{}
}

// Name implements provisioning.Phase.
func (m *Migrate) Name() string { return "migrate" }

// Idempotent implements provisioning.Phase.
func (m *Migrate) Idempotent() bool { return false }

// Provision implements provisioning.Phase.
func (m *Migrate) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	flask := cfg.AppDir + "/venv/bin/flask"
	migrationsDir := cfg.AppDir + "/migrations"

	// flask db init errors on an existing migrations directory, so guard.
	if ctx.Host.Exists(migrationsDir) {
		provisioning.LogResourceExists(ctx.Observer, m.Name(), "migration history", migrationsDir)
	} else {
		if _, err := ctx.Host.RunDir(ctx, cfg.AppDir, flask, "db", "init"); err != nil {
			return fmt.Errorf("failed to initialize migration history: %w", err)
		}
		provisioning.LogResourceCreated(ctx.Observer, m.Name(), "migration history", migrationsDir)
	}

	out, err := ctx.Host.RunDir(ctx, cfg.AppDir, flask, "db", "migrate", "-m", "deploy")
	if err != nil {
		// An unchanged schema is the expected steady state, not a failure.
		if strings.Contains(string(out), "No changes") || strings.Contains(err.Error(), "No changes") {
			ctx.Observer.Printf("schema unchanged; no migration generated")
		} else {
			return fmt.Errorf("failed to generate migration: %w", err)
		}
	}

	if _, err := ctx.Host.RunDir(ctx, cfg.AppDir, flask, "db", "upgrade"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
