package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadTimeouts_Defaults(t *testing.T) {
	timeouts := LoadTimeouts()

	assert.Equal(t, 60*time.Second, timeouts.DatastoreReady)
	assert.Equal(t, 2*time.Second, timeouts.DatastoreInterval)
	assert.Equal(t, 5*time.Minute, timeouts.Clone)
	assert.Equal(t, 15*time.Minute, timeouts.PackageInstall)
}

func TestLoadTimeouts_EnvOverride(t *testing.T) {
	t.Setenv("PROVISION_TIMEOUT_DB_READY", "90s")
	t.Setenv("PROVISION_INTERVAL_DB_READY", "500ms")

	timeouts := LoadTimeouts()

	assert.Equal(t, 90*time.Second, timeouts.DatastoreReady)
	assert.Equal(t, 500*time.Millisecond, timeouts.DatastoreInterval)
}

func TestLoadTimeouts_InvalidValueFallsBack(t *testing.T) {
	t.Setenv("PROVISION_TIMEOUT_DB_READY", "not-a-duration")

	timeouts := LoadTimeouts()

	assert.Equal(t, 60*time.Second, timeouts.DatastoreReady)
}
