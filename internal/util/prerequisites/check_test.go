package prerequisites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/platform/host"
)

func TestCheck_AllPresent(t *testing.T) {
	t.Parallel()
	h := host.NewFake()

	results := Check(h, DefaultTools())

	assert.False(t, results.HasErrors())
	require.NoError(t, results.Error())
	assert.Len(t, results.Results, len(DefaultTools()))
	for _, r := range results.Results {
		assert.True(t, r.Found)
		assert.NotEmpty(t, r.Path)
	}
}

func TestCheck_MissingRequiredTool(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	h.MissingTools = []string{"git"}

	results := Check(h, DefaultTools())

	assert.True(t, results.HasErrors())
	err := results.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git")
}

func TestCheck_MissingOptionalToolIsNotAnError(t *testing.T) {
	t.Parallel()
	h := host.NewFake()
	h.MissingTools = []string{"nginx"}

	results := Check(h, DefaultTools())

	assert.False(t, results.HasErrors())
	require.NoError(t, results.Error())
	assert.Len(t, results.Missing, 1)
}

func TestCheckPrivilege(t *testing.T) {
	t.Parallel()
	root := host.NewFake()
	require.NoError(t, CheckPrivilege(root))

	unprivileged := host.NewFake()
	unprivileged.Euid = 1000
	err := CheckPrivilege(unprivileged)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root")
}

func TestCheckForVariant_PostgresAddsTools(t *testing.T) {
	t.Parallel()
	h := host.NewFake()

	sqlite := CheckForVariant(h, false)
	postgres := CheckForVariant(h, true)

	assert.Greater(t, len(postgres.Results), len(sqlite.Results))
}
