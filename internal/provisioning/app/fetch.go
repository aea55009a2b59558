// Package app contains the application-level phases: repository checkout,
// secrets materialization, Python dependencies, and schema migration.
package app

import (
	"context"
	"fmt"
	"path"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
)

// Fetch clones the application repository, or updates an existing checkout
// so re-running against a provisioned host pulls instead of failing.
type Fetch struct{}

// NewFetch creates the repository checkout phase.
func NewFetch() *Fetch {
	return &Fetch{}
}

// Name implements provisioning.Phase.
func (f *Fetch) Name() string { return "fetch" }

// Idempotent implements provisioning.Phase.
func (f *Fetch) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (f *Fetch) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	if ctx.Host.Exists(cfg.AppDir + "/.git") {
		provisioning.LogResourceExists(ctx.Observer, f.Name(), "checkout", cfg.AppDir)
		if _, err := ctx.Host.Run(ctx, "git", "-C", cfg.AppDir, "fetch", "origin"); err != nil {
			return fmt.Errorf("failed to fetch updates: %w", err)
		}
		if _, err := ctx.Host.Run(ctx, "git", "-C", cfg.AppDir, "checkout", cfg.Branch); err != nil {
			return fmt.Errorf("failed to check out branch %s: %w", cfg.Branch, err)
		}
		if _, err := ctx.Host.Run(ctx, "git", "-C", cfg.AppDir, "pull", "--ff-only", "origin", cfg.Branch); err != nil {
			return fmt.Errorf("failed to pull branch %s: %w", cfg.Branch, err)
		}
		return nil
	}

	if err := ctx.Host.MkdirAll(path.Dir(cfg.AppDir), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", path.Dir(cfg.AppDir), err)
	}

	cloneCtx, cancel := context.WithTimeout(ctx, ctx.Timeouts.Clone)
	defer cancel()
	if _, err := ctx.Host.Run(cloneCtx, "git", "clone", "--branch", cfg.Branch, cfg.RepoURL, cfg.AppDir); err != nil {
		return fmt.Errorf("failed to clone %s: %w", cfg.RepoURL, err)
	}

	ctx.State.FreshClone = true
	provisioning.LogResourceCreated(ctx.Observer, f.Name(), "checkout", cfg.AppDir)
	return nil
}
