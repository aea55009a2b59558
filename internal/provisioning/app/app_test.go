package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/platform/host"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
)

func testContext(h *host.Fake, cfg *config.Config) *provisioning.Context {
	cfg.ApplyDefaults()
	return &provisioning.Context{
		Context:  context.Background(),
		Config:   cfg,
		State:    provisioning.NewState(),
		Host:     h,
		Observer: provisioning.NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}

func TestFetch_FreshHostClones(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	ctx := testContext(h, &config.Config{})

	err := NewFetch().Provision(ctx)

	require.NoError(t, err)
	assert.True(t, h.Ran("git clone --branch main "+config.DefaultRepoURL+" /opt/bot-hosting-web"))
	assert.True(t, ctx.State.FreshClone)
}

func TestFetch_ExistingCheckoutPulls(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	require.NoError(t, h.MkdirAll("/opt/bot-hosting-web/.git", 0755))
	ctx := testContext(h, &config.Config{})

	err := NewFetch().Provision(ctx)

	require.NoError(t, err)
	assert.False(t, h.Ran("git clone"), "existing checkout must be pulled, not re-cloned")
	assert.True(t, h.Ran("git -C /opt/bot-hosting-web fetch origin"))
	assert.True(t, h.Ran("git -C /opt/bot-hosting-web pull --ff-only origin main"))
	assert.False(t, ctx.State.FreshClone)
}

func TestFetch_CloneFailurePropagates(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	h.StubError("git clone", errors.New("repository not found"))
	ctx := testContext(h, &config.Config{})

	err := NewFetch().Provision(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository not found")
}

func TestSecrets_SQLiteVariantWritesExactKeys(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	ctx := testContext(h, &config.Config{
		SecretKey: "abc",
		OAuth:     config.OAuth{ClientID: "id-123", ClientSecret: "sec-456"},
	})

	err := NewSecrets().Provision(ctx)

	require.NoError(t, err)
	content := string(h.File("/opt/bot-hosting-web/.env"))
	assert.Equal(t, "SECRET_KEY=abc\nGOOGLE_CLIENT_ID=id-123\nGOOGLE_CLIENT_SECRET=sec-456\n", content)
	assert.Equal(t, "/opt/bot-hosting-web/.env", ctx.State.EnvFile)
}

func TestSecrets_PostgresVariantIncludesConnectionParameters(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	ctx := testContext(h, &config.Config{
		SecretKey: "abc",
		OAuth:     config.OAuth{ClientID: "id", ClientSecret: "sec"},
		Database:  config.Database{Engine: config.EnginePostgres, Name: "bots", User: "bots", Password: "pw"},
	})
	ctx.State.DatabaseURL = "postgresql://bots:pw@localhost:5432/bots"

	err := NewSecrets().Provision(ctx)

	require.NoError(t, err)
	content := string(h.File("/opt/bot-hosting-web/.env"))
	assert.Contains(t, content, "DATABASE_URL=postgresql://bots:pw@localhost:5432/bots\n")
	assert.Contains(t, content, "DB_NAME=bots\n")
	assert.Contains(t, content, "DB_PASSWORD=pw\n")
}

func TestSecrets_OverwritesStaleBindings(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	require.NoError(t, h.WriteFile("/opt/bot-hosting-web/.env", []byte("OLD_KEY=stale\n"), 0600))
	ctx := testContext(h, &config.Config{
		SecretKey: "abc",
		OAuth:     config.OAuth{ClientID: "id", ClientSecret: "sec"},
	})

	err := NewSecrets().Provision(ctx)

	require.NoError(t, err)
	assert.NotContains(t, string(h.File("/opt/bot-hosting-web/.env")), "OLD_KEY")
}

func TestDependencies_FreshHost(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	require.NoError(t, h.WriteFile("/opt/bot-hosting-web/requirements.txt", []byte("flask\n"), 0644))
	ctx := testContext(h, &config.Config{})

	err := NewDependencies().Provision(ctx)

	require.NoError(t, err)
	assert.True(t, h.Ran("python3 -m venv /opt/bot-hosting-web/venv"))
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/pip install -r /opt/bot-hosting-web/requirements.txt"))
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/pip install gunicorn"))
	assert.True(t, h.Ran("chown -R www-data:www-data /opt/bot-hosting-web"))
	assert.True(t, h.Exists("/opt/bot-hosting-web/user_data"))
	assert.Equal(t, "/opt/bot-hosting-web/venv", ctx.State.VenvDir)
}

func TestDependencies_ExistingVenvReused(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	require.NoError(t, h.MkdirAll("/opt/bot-hosting-web/venv", 0755))
	ctx := testContext(h, &config.Config{})

	err := NewDependencies().Provision(ctx)

	require.NoError(t, err)
	assert.False(t, h.Ran("python3 -m venv"), "existing virtualenv must be reused")
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/pip install gunicorn"))
}

func TestDependencies_MissingRequirementsTolerated(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	ctx := testContext(h, &config.Config{})

	err := NewDependencies().Provision(ctx)

	require.NoError(t, err)
	assert.False(t, h.Ran("/opt/bot-hosting-web/venv/bin/pip install -r"))
}

func TestMigrate_FreshHostRunsAllThreeSteps(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	ctx := testContext(h, &config.Config{})

	err := NewMigrate().Provision(ctx)

	require.NoError(t, err)
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/flask db init"))
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/flask db migrate -m deploy"))
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/flask db upgrade"))
}

func TestMigrate_ExistingHistorySkipsInit(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	require.NoError(t, h.MkdirAll("/opt/bot-hosting-web/migrations", 0755))
	ctx := testContext(h, &config.Config{})

	err := NewMigrate().Provision(ctx)

	require.NoError(t, err)
	assert.False(t, h.Ran("/opt/bot-hosting-web/venv/bin/flask db init"))
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/flask db upgrade"))
}

func TestMigrate_NoChangesTolerated(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	h.Stub("/opt/bot-hosting-web/venv/bin/flask db migrate", host.CommandResult{
		Output: "INFO  [alembic] No changes in schema detected.",
		Err:    errors.New("exit status 1"),
	})
	ctx := testContext(h, &config.Config{})

	err := NewMigrate().Provision(ctx)

	require.NoError(t, err, "an unchanged schema is a no-op, not a failure")
	assert.True(t, h.Ran("/opt/bot-hosting-web/venv/bin/flask db upgrade"))
}

func TestMigrate_RealFailurePropagates(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	h.StubError("/opt/bot-hosting-web/venv/bin/flask db upgrade", errors.New("target database is not up to date"))
	ctx := testContext(h, &config.Config{})

	err := NewMigrate().Provision(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not up to date")
}
