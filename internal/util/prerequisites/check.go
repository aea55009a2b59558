// Package prerequisites verifies the provisioner can actually run on this
// host: elevated privilege and the external tools every step shells out to.
package prerequisites

import (
	"fmt"
	"strings"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/platform/host"
)

// Tool represents a host tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string
}

// DefaultTools returns the tools every deployment variant shells out to.
func DefaultTools() []Tool {
	return []Tool{
		{Name: "apt-get", Required: true, Description: "Installs OS packages"},
		{Name: "git", Required: true, Description: "Clones and updates the application checkout"},
		{Name: "python3", Required: true, Description: "Creates the virtualenv and runs migrations"},
		{Name: "systemctl", Required: true, Description: "Manages the application service"},
		{Name: "nginx", Required: false, Description: "Reverse proxy (installed by the packages step if absent)"},
	}
}

// PostgresTools returns additional tools the postgres variant needs.
func PostgresTools() []Tool {
	return []Tool{
		{Name: "psql", Required: false, Description: "Provisions the database and role (installed by the packages step if absent)"},
		{Name: "pg_isready", Required: false, Description: "Probes datastore readiness (installed by the packages step if absent)"},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.Description))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available on the host.
func Check(h host.Host, tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := h.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckPrivilege verifies the process runs with root privilege. Every step
// mutates system state (packages, /etc, services), so this is checked before
// anything else.
func CheckPrivilege(h host.Host) error {
	if h.Geteuid() != 0 {
		return fmt.Errorf("provisioning must run as root (current euid %d); re-run with sudo", h.Geteuid())
	}
	return nil
}

// CheckForVariant checks the tools a run of the given database engine needs.
func CheckForVariant(h host.Host, postgres bool) *CheckResults {
	tools := DefaultTools()
	if postgres {
		tools = append(tools, PostgresTools()...)
	}
	return Check(h, tools)
}
