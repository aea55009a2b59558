package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()
	cfg := &Config{Domain: "example.com"}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultRepoURL, cfg.RepoURL)
	assert.Equal(t, "main", cfg.Branch)
	assert.Equal(t, "/opt/bot-hosting-web", cfg.AppDir)
	assert.Equal(t, "www-data", cfg.AppUser)
	assert.Equal(t, "bot-hosting-web", cfg.ServiceName)
	assert.Equal(t, EngineSQLite, cfg.Database.Engine)
	assert.Equal(t, "/etc/nginx/sites-available", cfg.Nginx.SitesAvailable)
	assert.Equal(t, "/etc/nginx/sites-enabled", cfg.Nginx.SitesEnabled)
	assert.Equal(t, "/etc/systemd/system", cfg.Systemd.UnitDir)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		Branch:   "develop",
		AppDir:   "/srv/app",
		Database: Database{Engine: EnginePostgres},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "develop", cfg.Branch)
	assert.Equal(t, "/srv/app", cfg.AppDir)
	assert.Equal(t, EnginePostgres, cfg.Database.Engine)
}

func TestEnvFilePath(t *testing.T) {
	t.Parallel()
	cfg := &Config{AppDir: "/opt/bot-hosting-web"}
	assert.Equal(t, "/opt/bot-hosting-web/.env", cfg.EnvFilePath())
}

func TestUsesPostgres(t *testing.T) {
	t.Parallel()
	assert.False(t, (&Config{Database: Database{Engine: EngineSQLite}}).UsesPostgres())
	assert.True(t, (&Config{Database: Database{Engine: EnginePostgres}}).UsesPostgres())
}
