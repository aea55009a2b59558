// Package config defines the deployment configuration and how it is
// resolved for a run.
//
// Values come from three sources, highest precedence first: environment
// variables, the provision.yaml config file, and built-in defaults. Secret
// values (session key, OAuth client secret, database password) are never
// written back to the config file; they come from the environment or the
// interactive wizard.
package config
