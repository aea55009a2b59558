package app

import (
	"fmt"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
)

// Dependencies creates the virtualenv, installs the application's Python
// requirements plus gunicorn, and prepares the runtime data directory.
type Dependencies struct{}

// NewDependencies creates the dependency installation phase.
func NewDependencies() *Dependencies {
	return &Dependencies{}
}

// Name implements provisioning.Phase.
func (d *Dependencies) Name() string { return "dependencies" }

// Idempotent implements provisioning.Phase.
func (d *Dependencies) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (d *Dependencies) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	venv := cfg.AppDir + "/venv"
	pip := venv + "/bin/pip"

	if ctx.Host.Exists(venv) {
		provisioning.LogResourceExists(ctx.Observer, d.Name(), "virtualenv", venv)
	} else {
		if _, err := ctx.Host.Run(ctx, "python3", "-m", "venv", venv); err != nil {
			return fmt.Errorf("failed to create virtualenv: %w", err)
		}
		provisioning.LogResourceCreated(ctx.Observer, d.Name(), "virtualenv", venv)
	}

	if _, err := ctx.Host.Run(ctx, pip, "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("failed to upgrade pip: %w", err)
	}

	requirements := cfg.AppDir + "/requirements.txt"
	if ctx.Host.Exists(requirements) {
		if _, err := ctx.Host.Run(ctx, pip, "install", "-r", requirements); err != nil {
			return fmt.Errorf("failed to install requirements: %w", err)
		}
	} else {
		ctx.Observer.Printf("no requirements.txt in checkout; skipping")
	}

	// gunicorn serves the app in production; it is not in requirements.txt.
	if _, err := ctx.Host.Run(ctx, pip, "install", "gunicorn"); err != nil {
		return fmt.Errorf("failed to install gunicorn: %w", err)
	}

	// The app lazily creates user_data at first request; pre-create it so
	// ownership is right before the service user ever writes to it.
	dataDir := cfg.AppDir + "/user_data"
	if err := ctx.Host.MkdirAll(dataDir, 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dataDir, err)
	}
	if _, err := ctx.Host.Run(ctx, "chown", "-R", cfg.AppUser+":"+cfg.AppUser, cfg.AppDir); err != nil {
		return fmt.Errorf("failed to set ownership of %s: %w", cfg.AppDir, err)
	}

	ctx.State.VenvDir = venv
	return nil
}
