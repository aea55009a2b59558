package web

import (
	"fmt"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/render"
)

// Service renders the gunicorn systemd unit, installs it, and (re)starts
// the application under the process manager.
type Service struct{}

// NewService creates the process-manager configuration phase.
func NewService() *Service {
	return &Service{}
}

// Name implements provisioning.Phase.
func (s *Service) Name() string { return "service" }

// Idempotent implements provisioning.Phase.
func (s *Service) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (s *Service) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	rendered, err := render.Render(render.SystemdUnit(), map[string]string{
		"SERVICE_NAME": cfg.ServiceName,
		"APP_USER":     cfg.AppUser,
		"APP_DIR":      cfg.AppDir,
	})
	if err != nil {
		return fmt.Errorf("failed to render unit: %w", err)
	}

	unitFile := cfg.Systemd.UnitDir + "/" + cfg.ServiceName + ".service"
	if err := ctx.Host.WriteFile(unitFile, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to install unit: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "unit", unitFile)

	if _, err := ctx.Host.Run(ctx, "systemctl", "daemon-reload"); err != nil {
		return fmt.Errorf("failed to reload unit definitions: %w", err)
	}
	if _, err := ctx.Host.Run(ctx, "systemctl", "enable", cfg.ServiceName); err != nil {
		return fmt.Errorf("failed to enable %s: %w", cfg.ServiceName, err)
	}
	// Restart rather than start so a re-run picks up new code and config.
	if _, err := ctx.Host.Run(ctx, "systemctl", "restart", cfg.ServiceName); err != nil {
		return fmt.Errorf("failed to start %s: %w", cfg.ServiceName, err)
	}

	ctx.State.UnitFile = unitFile
	return nil
}
