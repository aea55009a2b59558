// Package web contains the serving-layer phases: the Nginx reverse-proxy
// site and the systemd service unit.
package web

import (
	"fmt"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/render"
)

// Proxy renders the reverse-proxy site configuration, installs and enables
// it, and reloads Nginx.
type Proxy struct{}

// NewProxy creates the reverse-proxy configuration phase.
func NewProxy() *Proxy {
	return &Proxy{}
}

// Name implements provisioning.Phase.
func (p *Proxy) Name() string { return "proxy" }

// Idempotent implements provisioning.Phase.
func (p *Proxy) Idempotent() bool { return true }

// Provision implements provisioning.Phase.
func (p *Proxy) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	rendered, err := render.Render(render.NginxSite(), map[string]string{
		"DOMAIN":  cfg.Domain,
		"APP_DIR": cfg.AppDir,
	})
	if err != nil {
		return fmt.Errorf("failed to render site configuration: %w", err)
	}

	siteFile := cfg.Nginx.SitesAvailable + "/" + cfg.ServiceName + ".conf"
	if err := ctx.Host.WriteFile(siteFile, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to install site configuration: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "site configuration", siteFile)

	// Debian ships a default catch-all site that would shadow ours.
	defaultSite := cfg.Nginx.SitesEnabled + "/default"
	if ctx.Host.Exists(defaultSite) {
		if err := ctx.Host.Remove(defaultSite); err != nil {
			return fmt.Errorf("failed to remove default site: %w", err)
		}
	}

	enabled := cfg.Nginx.SitesEnabled + "/" + cfg.ServiceName + ".conf"
	if ctx.Host.Exists(enabled) {
		provisioning.LogResourceExists(ctx.Observer, p.Name(), "enabled site", enabled)
	} else {
		if err := ctx.Host.Symlink(siteFile, enabled); err != nil {
			return fmt.Errorf("failed to enable site: %w", err)
		}
	}

	if _, err := ctx.Host.Run(ctx, "nginx", "-t"); err != nil {
		return fmt.Errorf("rendered site configuration is invalid: %w", err)
	}
	if _, err := ctx.Host.Run(ctx, "systemctl", "restart", "nginx"); err != nil {
		return fmt.Errorf("failed to restart nginx: %w", err)
	}

	ctx.State.SiteFile = siteFile
	return nil
}
