package config

import (
	"os"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	DatastoreReady    time.Duration // Bound on waiting for the datastore to accept connections
	DatastoreInterval time.Duration // Poll interval during the readiness wait
	Clone             time.Duration // Timeout for the initial repository clone
	PackageInstall    time.Duration // Timeout for package manager operations
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - PROVISION_TIMEOUT_DB_READY (default: 60s)
//   - PROVISION_INTERVAL_DB_READY (default: 2s)
//   - PROVISION_TIMEOUT_CLONE (default: 5m)
//   - PROVISION_TIMEOUT_PACKAGES (default: 15m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		DatastoreReady:    parseDuration("PROVISION_TIMEOUT_DB_READY", 60*time.Second),
		DatastoreInterval: parseDuration("PROVISION_INTERVAL_DB_READY", 2*time.Second),
		Clone:             parseDuration("PROVISION_TIMEOUT_CLONE", 5*time.Minute),
		PackageInstall:    parseDuration("PROVISION_TIMEOUT_PACKAGES", 15*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
