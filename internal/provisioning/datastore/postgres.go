// Package datastore provisions the PostgreSQL role and database for the
// postgres deployment variant. The sqlite variant registers no datastore
// phase; the application manages its database file itself.
package datastore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/util/retry"
)

// Postgres waits for the database server to accept connections, then creates
// the application role and database unless they already exist.
type Postgres struct{}

// NewPostgres creates the datastore phase.
func NewPostgres() *Postgres {
	return &Postgres{}
}

// Name implements provisioning.Phase.
func (p *Postgres) Name() string { return "datastore" }

// Idempotent implements provisioning.Phase.
func (p *Postgres) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (p *Postgres) Provision(ctx *provisioning.Context) error {
	db := ctx.Config.Database

	if _, err := ctx.Host.Run(ctx, "systemctl", "enable", "--now", "postgresql"); err != nil {
		return fmt.Errorf("failed to start postgresql: %w", err)
	}

	// The server needs a moment after start before it accepts connections.
	// Wait with a hard deadline instead of blocking indefinitely.
	err := retry.Until(ctx, ctx.Timeouts.DatastoreReady, ctx.Timeouts.DatastoreInterval,
		func(probeCtx context.Context) error {
			_, probeErr := ctx.Host.Run(probeCtx, "pg_isready", "-q")
			return probeErr
		})
	if err != nil {
		return fmt.Errorf("datastore did not become ready: %w", err)
	}

	if err := p.ensureRole(ctx, db.User, db.Password); err != nil {
		return err
	}
	if err := p.ensureDatabase(ctx, db.Name, db.User); err != nil {
		return err
	}

	ctx.State.DatabaseURL = ConnectionURL(db.User, db.Password, db.Name)
	return nil
}

// ensureRole creates the login role unless it already exists.
func (p *Postgres) ensureRole(ctx *provisioning.Context, user, password string) error {
	exists, err := p.exists(ctx, fmt.Sprintf("SELECT 1 FROM pg_roles WHERE rolname=%s", quoteLiteral(user)))
	if err != nil {
		return fmt.Errorf("failed to check role %s: %w", user, err)
	}
	if exists {
		provisioning.LogResourceExists(ctx.Observer, p.Name(), "role", user)
		return nil
	}

	// The statement goes over stdin so the password never appears in a
	// process listing.
	stmt := fmt.Sprintf("CREATE ROLE %s WITH LOGIN PASSWORD %s;", quoteIdent(user), quoteLiteral(password))
	if _, err := ctx.Host.RunInput(ctx, stmt, "sudo", "-u", "postgres", "psql", "-v", "ON_ERROR_STOP=1"); err != nil {
		return fmt.Errorf("failed to create role %s: %w", user, err)
	}
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "role", user)
	return nil
}

// ensureDatabase creates the database owned by the role unless it already
// exists.
func (p *Postgres) ensureDatabase(ctx *provisioning.Context, name, owner string) error {
	exists, err := p.exists(ctx, fmt.Sprintf("SELECT 1 FROM pg_database WHERE datname=%s", quoteLiteral(name)))
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", name, err)
	}
	if exists {
		provisioning.LogResourceExists(ctx.Observer, p.Name(), "database", name)
		return nil
	}

	stmt := fmt.Sprintf("CREATE DATABASE %s OWNER %s;", quoteIdent(name), quoteIdent(owner))
	if _, err := ctx.Host.RunInput(ctx, stmt, "sudo", "-u", "postgres", "psql", "-v", "ON_ERROR_STOP=1"); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "database", name)
	return nil
}

func (p *Postgres) exists(ctx *provisioning.Context, query string) (bool, error) {
	out, err := ctx.Host.Run(ctx, "sudo", "-u", "postgres", "psql", "-tAc", query)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == "1", nil
}

// ConnectionURL builds the DSN written into the application's secrets file.
// Userinfo escaping differs from query escaping (a space is %20, not +), so
// the whole component goes through url.UserPassword.
func ConnectionURL(user, password, name string) string {
	return fmt.Sprintf("postgresql://%s@localhost:5432/%s",
		url.UserPassword(user, password).String(), name)
}

// quoteLiteral quotes a string as a SQL literal, doubling embedded quotes.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteIdent quotes a SQL identifier, doubling embedded double quotes.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
