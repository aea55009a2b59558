package config

import (
	"fmt"
	"regexp"
	"strings"
)

// domainRegex validates hostname format: dot-separated labels of alphanumerics
// and hyphens, no leading or trailing hyphen per label.
var domainRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)+$`)

// Validate checks structural correctness of the configuration. It does not
// require the secret inputs to be present; use MissingRequired for that.
func (c *Config) Validate() error {
	if c.Domain != "" && !domainRegex.MatchString(strings.ToLower(c.Domain)) {
		return fmt.Errorf("domain %q is not a valid hostname", c.Domain)
	}

	switch c.Database.Engine {
	case "", EngineSQLite, EnginePostgres:
	default:
		return fmt.Errorf("database engine must be %q or %q, got %q",
			EngineSQLite, EnginePostgres, c.Database.Engine)
	}

	if c.AppDir != "" && !strings.HasPrefix(c.AppDir, "/") {
		return fmt.Errorf("app_dir must be an absolute path, got %q", c.AppDir)
	}

	return nil
}

// MissingRequired lists required values that are still empty. The pipeline
// must not be assembled while this is non-empty.
func (c *Config) MissingRequired() []string {
	var missing []string

	require := func(value, key string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	require(c.Domain, "APP_DOMAIN")
	require(c.SecretKey, "SECRET_KEY")
	require(c.OAuth.ClientID, "GOOGLE_CLIENT_ID")
	require(c.OAuth.ClientSecret, "GOOGLE_CLIENT_SECRET")

	if c.UsesPostgres() {
		require(c.Database.Name, "DB_NAME")
		require(c.Database.User, "DB_USER")
		require(c.Database.Password, "DB_PASSWORD")
	}

	return missing
}
