package config

// Database engine values.
const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

// Default deployment locations on the target host.
const (
	DefaultRepoURL     = "https://github.com/TEAM-AKIRU/BOT-HOSTING-WEB.git"
	DefaultBranch      = "main"
	DefaultAppDir      = "/opt/bot-hosting-web"
	DefaultAppUser     = "www-data"
	DefaultServiceName = "bot-hosting-web"

	DefaultSitesAvailable = "/etc/nginx/sites-available"
	DefaultSitesEnabled   = "/etc/nginx/sites-enabled"
	DefaultUnitDir        = "/etc/systemd/system"
)

// Config holds everything one deployment run needs.
type Config struct {
	// Domain is the public hostname the site is served under.
	Domain string `yaml:"domain"`

	// Repository checkout.
	RepoURL string `yaml:"repo_url,omitempty"`
	Branch  string `yaml:"branch,omitempty"`

	// Application install location and runtime identity.
	AppDir      string `yaml:"app_dir,omitempty"`
	AppUser     string `yaml:"app_user,omitempty"`
	ServiceName string `yaml:"service_name,omitempty"`

	Database Database `yaml:"database"`
	OAuth    OAuth    `yaml:"oauth"`

	// SecretKey signs the application's sessions. Never persisted by the
	// wizard; supplied via SECRET_KEY or prompted.
	SecretKey string `yaml:"-"`

	Nginx   Nginx   `yaml:"nginx,omitempty"`
	Systemd Systemd `yaml:"systemd,omitempty"`
}

// Database selects and parameterizes the datastore variant.
type Database struct {
	// Engine is "sqlite" (app-managed file database, nothing to provision)
	// or "postgres" (server datastore provisioned by the pipeline).
	Engine   string `yaml:"engine"`
	Name     string `yaml:"name,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"-"`
}

// OAuth holds the Google OAuth client credentials the application logs
// users in with.
type OAuth struct {
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"-"`
}

// Nginx holds reverse-proxy installation paths. Overridable mainly so tests
// can point them at a scratch location.
type Nginx struct {
	SitesAvailable string `yaml:"sites_available,omitempty"`
	SitesEnabled   string `yaml:"sites_enabled,omitempty"`
}

// Systemd holds the process-manager unit directory.
type Systemd struct {
	UnitDir string `yaml:"unit_dir,omitempty"`
}

// ApplyDefaults fills unset fields with the standard deployment locations.
func (c *Config) ApplyDefaults() {
	if c.RepoURL == "" {
		c.RepoURL = DefaultRepoURL
	}
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.AppDir == "" {
		c.AppDir = DefaultAppDir
	}
	if c.AppUser == "" {
		c.AppUser = DefaultAppUser
	}
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Database.Engine == "" {
		c.Database.Engine = EngineSQLite
	}
	if c.Nginx.SitesAvailable == "" {
		c.Nginx.SitesAvailable = DefaultSitesAvailable
	}
	if c.Nginx.SitesEnabled == "" {
		c.Nginx.SitesEnabled = DefaultSitesEnabled
	}
	if c.Systemd.UnitDir == "" {
		c.Systemd.UnitDir = DefaultUnitDir
	}
}

// EnvFilePath returns the location of the application's secrets file.
func (c *Config) EnvFilePath() string {
	return c.AppDir + "/.env"
}

// UsesPostgres reports whether the run provisions a server datastore.
func (c *Config) UsesPostgres() bool {
	return c.Database.Engine == EnginePostgres
}
