// Package provisioning provides the step pipeline that deploys the
// application onto a host.
//
// The provisioning domain is organized into focused subpackages:
//   - system/ — privilege/tool preflight and OS package installation
//   - datastore/ — PostgreSQL readiness wait, role and database creation
//   - app/ — repository checkout, secrets file, virtualenv, schema migration
//   - web/ — Nginx site and systemd unit installation
//
// This root package contains the Phase contract, the run Context, and the
// sequential pipeline that executes phases in dependency order.
package provisioning

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the unique human-readable name of this phase.
	Name() string

	// Idempotent reports whether re-running this phase against an already
	// provisioned host is safe. Non-idempotent phases guard internally
	// with existence checks instead.
	Idempotent() bool

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}
