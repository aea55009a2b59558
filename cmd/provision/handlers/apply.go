// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config/wizard"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/platform/host"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning/app"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning/datastore"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning/system"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning/web"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/util/prerequisites"
)

// ApplyOptions carries the flag values of the apply command.
type ApplyOptions struct {
	ConfigPath     string
	NonInteractive bool
	SkipChecks     bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig resolves the run configuration.
	loadConfig = config.Load

	// collectMissing prompts for required values the config lacks.
	collectMissing = wizard.CollectMissing

	// newHost creates the host the pipeline executes against.
	newHost = func() host.Host {
		return host.NewLocal()
	}

	// checkPrivilege verifies the process runs as root.
	checkPrivilege = prerequisites.CheckPrivilege

	// checkTools verifies the required command line tools exist.
	checkTools = prerequisites.CheckForVariant

	// runPipeline executes an assembled pipeline.
	runPipeline = func(p *provisioning.Pipeline, ctx *provisioning.Context) error {
		return p.Run(ctx)
	}
)

// Apply deploys the application onto the local host.
//
// The workflow:
//  1. Resolve configuration from file, environment, and (unless
//     --non-interactive) interactive prompts for anything still missing
//  2. Verify root privilege and tool availability
//  3. Assemble the phase pipeline for the configured database engine
//  4. Run the phases in order; each one skips work already done
//  5. Print the service endpoints and follow-up commands
//
// Secrets reach the run through the environment or prompts and are
// written only to the deployed .env file, never to the config file.
func Apply(ctx context.Context, opts ApplyOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	h := newHost()
	if err := checkPrivilege(h); err != nil {
		return err
	}

	if err := resolveInputs(ctx, cfg, opts.NonInteractive); err != nil {
		return err
	}

	if !opts.SkipChecks {
		if err := checkTools(h, cfg.UsesPostgres()).Error(); err != nil {
			return fmt.Errorf("%w\nre-run with --skip-checks to let the packages phase install them", err)
		}
	}

	log.Printf("Deploying %s to %s", cfg.RepoURL, cfg.Domain)

	pctx := provisioning.NewContext(ctx, cfg, h)
	if err := runPipeline(buildPipeline(cfg, opts.SkipChecks), pctx); err != nil {
		return err
	}

	printApplySuccess(cfg, pctx.State)
	return nil
}

// resolveInputs fills required values the file and environment did not
// provide. Non-interactive runs fail with the list of missing keys so
// automation gets an actionable error instead of a hung prompt.
func resolveInputs(ctx context.Context, cfg *config.Config, nonInteractive bool) error {
	if nonInteractive {
		if missing := cfg.MissingRequired(); len(missing) > 0 {
			return &wizard.MissingInputError{Keys: missing}
		}
		return nil
	}
	return collectMissing(ctx, cfg)
}

// buildPipeline assembles the phases for a deploy in execution order.
// The datastore phase joins the pipeline only for the PostgreSQL engine;
// SQLite needs no server-side setup. It runs before the secrets phase so
// the connection URL is known when the .env file is written. skipChecks
// carries --skip-checks into the preflight phase so a fresh host without
// the installable tools can reach the packages phase that installs them.
func buildPipeline(cfg *config.Config, skipChecks bool) *provisioning.Pipeline {
	phases := []provisioning.Phase{
		system.NewPreflight(skipChecks),
		system.NewPackages(),
	}

	if cfg.UsesPostgres() {
		phases = append(phases, datastore.NewPostgres())
	}

	phases = append(phases,
		app.NewFetch(),
		app.NewSecrets(),
		app.NewDependencies(),
		app.NewMigrate(),
		web.NewProxy(),
		web.NewService(),
	)

	return provisioning.NewPipeline(phases...)
}
