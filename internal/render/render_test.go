package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ReplacesAllOccurrences(t *testing.T) {
	t.Parallel()
	tmpl := "server_name {{DOMAIN}};\n# {{DOMAIN}} again"

	out, err := Render(tmpl, map[string]string{"DOMAIN": "example.com"})

	require.NoError(t, err)
	assert.Equal(t, "server_name example.com;\n# example.com again", out)
	assert.NotContains(t, out, "{{DOMAIN}}")
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()
	bindings := map[string]string{"DOMAIN": "example.com", "APP_DIR": "/opt/app"}

	first, err := Render(NginxSite(), bindings)
	require.NoError(t, err)
	second, err := Render(NginxSite(), bindings)
	require.NoError(t, err)

	assert.Equal(t, first, second, "rendering twice with identical inputs must be byte-identical")
}

func TestRender_UnresolvedTokenFails(t *testing.T) {
	t.Parallel()
	_, err := Render("listen {{PORT}}; root {{APP_DIR}};", map[string]string{"PORT": "80"})

	require.Error(t, err)
	var unresolved *UnresolvedTokenError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"APP_DIR"}, unresolved.Tokens)
}

func TestRender_ReportsEachTokenOnce(t *testing.T) {
	t.Parallel()
	_, err := Render("{{A}} {{B}} {{A}}", nil)

	var unresolved *UnresolvedTokenError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, []string{"A", "B"}, unresolved.Tokens)
}

func TestRender_IgnoresNginxVariables(t *testing.T) {
	t.Parallel()
	tmpl := "proxy_set_header Host $host;"

	out, err := Render(tmpl, nil)

	require.NoError(t, err)
	assert.Equal(t, tmpl, out)
}

func TestNginxSite_RendersCompletely(t *testing.T) {
	t.Parallel()
	out, err := Render(NginxSite(), map[string]string{
		"DOMAIN":  "example.com",
		"APP_DIR": "/opt/bot-hosting-web",
	})

	require.NoError(t, err)
	assert.Contains(t, out, "server_name example.com;")
	assert.Contains(t, out, "alias /opt/bot-hosting-web/static;")
	assert.False(t, strings.Contains(out, "{{"), "no sentinel may survive rendering")
}

func TestSystemdUnit_RendersCompletely(t *testing.T) {
	t.Parallel()
	out, err := Render(SystemdUnit(), map[string]string{
		"SERVICE_NAME": "bot-hosting-web",
		"APP_USER":     "www-data",
		"APP_DIR":      "/opt/bot-hosting-web",
	})

	require.NoError(t, err)
	assert.Contains(t, out, "WorkingDirectory=/opt/bot-hosting-web")
	assert.Contains(t, out, "EnvironmentFile=/opt/bot-hosting-web/.env")
	assert.Contains(t, out, "User=www-data")
	assert.Contains(t, out, "gunicorn --config /opt/bot-hosting-web/gunicorn_config.py app:app")
	assert.False(t, strings.Contains(out, "{{"), "no sentinel may survive rendering")
}

func TestNginxSite_MissingBindingFailsLoudly(t *testing.T) {
	t.Parallel()
	_, err := Render(NginxSite(), map[string]string{"DOMAIN": "example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_DIR")
}
