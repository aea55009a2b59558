package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// equivalent to (*testing.T).Chdir which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provision.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeConfigFile(t, `
domain: example.com
branch: develop
database:
  engine: postgres
  name: bots
  user: bots
oauth:
  client_id: client-123
`)

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "example.com", cfg.Domain)
	assert.Equal(t, "develop", cfg.Branch)
	assert.Equal(t, EnginePostgres, cfg.Database.Engine)
	assert.Equal(t, "bots", cfg.Database.Name)
	assert.Equal(t, "client-123", cfg.OAuth.ClientID)
	// Defaults filled in
	assert.Equal(t, DefaultAppDir, cfg.AppDir)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "domain: [unclosed")

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
domain: example.com
database:
  engine: mysql
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("APP_DOMAIN", "env.example.com")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("DB_ENGINE", "postgres")
	t.Setenv("DB_NAME", "bots")

	cfg := &Config{Domain: "file.example.com"}
	cfg.ApplyEnv()

	assert.Equal(t, "env.example.com", cfg.Domain, "environment wins over file values")
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, EnginePostgres, cfg.Database.Engine)
	assert.Equal(t, "bots", cfg.Database.Name)
}

func TestApplyEnv_UnsetLeavesValues(t *testing.T) {
	cfg := &Config{Domain: "file.example.com"}
	cfg.ApplyEnv()

	assert.Equal(t, "file.example.com", cfg.Domain)
}

func TestLoad_NoFileSeedsFromEnv(t *testing.T) {
	t.Setenv("APP_DOMAIN", "env.example.com")
	chdir(t, t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "env.example.com", cfg.Domain)
	assert.Equal(t, DefaultAppDir, cfg.AppDir)
}

func TestLoad_NoFileRejectsInvalidEnv(t *testing.T) {
	t.Setenv("APP_DOMAIN", "not a hostname!")
	chdir(t, t.TempDir())

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid hostname")
}

func TestLoad_NoFileRejectsUnknownEngine(t *testing.T) {
	t.Setenv("APP_DOMAIN", "env.example.com")
	t.Setenv("DB_ENGINE", "mysql")
	chdir(t, t.TempDir())

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database engine")
}

func TestLoad_PicksUpDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("domain: example.com\n"), 0600))
	chdir(t, dir)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "example.com", cfg.Domain)
}
