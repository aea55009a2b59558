package system

import (
	"context"
	"fmt"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
)

// basePackages are installed for every deployment variant.
var basePackages = []string{
	"nginx",
	"git",
	"python3",
	"python3-pip",
	"python3-venv",
}

// postgresPackages are added for the postgres datastore variant.
var postgresPackages = []string{
	"postgresql",
	"postgresql-contrib",
}

// Packages refreshes the package index and installs everything the
// deployment needs. Installing already-installed packages is a no-op for
// the package manager, so re-runs are safe.
type Packages struct{}

// NewPackages creates the package installation phase.
func NewPackages() *Packages {
	return &Packages{}
}

// Name implements provisioning.Phase.
func (p *Packages) Name() string { return "packages" }

// Idempotent implements provisioning.Phase.
func (p *Packages) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (p *Packages) Provision(ctx *provisioning.Context) error {
	installCtx, cancel := context.WithTimeout(ctx, ctx.Timeouts.PackageInstall)
	defer cancel()

	if _, err := ctx.Host.Run(installCtx, "apt-get", "update", "-q"); err != nil {
		return fmt.Errorf("package index update failed: %w", err)
	}

	packages := PackageList(ctx.Config.UsesPostgres())
	args := append([]string{"install", "-y", "-q"}, packages...)
	if _, err := ctx.Host.Run(installCtx, "apt-get", args...); err != nil {
		return fmt.Errorf("package installation failed: %w", err)
	}

	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "packages", fmt.Sprintf("%d installed", len(packages)))
	return nil
}

// PackageList returns the packages a run of the given variant installs.
func PackageList(postgres bool) []string {
	packages := append([]string(nil), basePackages...)
	if postgres {
		packages = append(packages, postgresPackages...)
	}
	return packages
}
