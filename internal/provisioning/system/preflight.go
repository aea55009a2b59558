// Package system contains the host-level phases: privilege and tool
// preflight, and OS package installation.
package system

import (
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/util/prerequisites"
)

// Preflight verifies root privilege and the presence of required host tools
// before any state is mutated. With skipTools set only the privilege check
// runs, so a fresh host can rely on the packages phase to install the rest.
type Preflight struct {
	skipTools bool
}

// NewPreflight creates the preflight phase.
func NewPreflight(skipTools bool) *Preflight {
	return &Preflight{skipTools: skipTools}
}

// Name implements provisioning.Phase.
func (p *Preflight) Name() string { return "preflight" }

// Idempotent implements provisioning.Phase.
func (p *Preflight) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (p *Preflight) Provision(ctx *provisioning.Context) error {
	if err := prerequisites.CheckPrivilege(ctx.Host); err != nil {
		return err
	}

	if p.skipTools {
		ctx.Observer.Printf("tool availability check skipped; the packages phase installs what is missing")
		return nil
	}

	results := prerequisites.CheckForVariant(ctx.Host, ctx.Config.UsesPostgres())
	for _, missing := range results.Missing {
		if !missing.Required {
			ctx.Observer.Printf("optional tool %s not found; the packages phase will install it", missing.Name)
		}
	}
	return results.Error()
}
