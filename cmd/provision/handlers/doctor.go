package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/util/prerequisites"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
)

// Doctor reports host readiness without changing anything: tool
// availability, privilege, and configuration completeness.
func Doctor(_ context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	h := newHost()

	fmt.Println()
	fmt.Println(summaryTitleStyle.Render("  Host readiness: " + displayDomain(cfg)))
	fmt.Println(summaryDimStyle.Render("  " + strings.Repeat("=", 30)))
	fmt.Println()

	healthy := printPrivilegeReport(h.Geteuid())

	results := checkTools(h, cfg.UsesPostgres())
	if !printToolReport(results) {
		healthy = false
	}

	if !printConfigReport(cfg) {
		healthy = false
	}

	fmt.Println()
	if !healthy {
		return fmt.Errorf("host is not ready; fix the findings above and re-run")
	}
	fmt.Println(okStyle.Render("  Ready. Run 'provision apply' to deploy."))
	fmt.Println()
	return nil
}

func displayDomain(cfg *config.Config) string {
	if cfg.Domain == "" {
		return "(domain not set)"
	}
	return cfg.Domain
}

func printPrivilegeReport(euid int) bool {
	fmt.Println(summarySectionStyle.Render("  Privilege"))
	if euid == 0 {
		fmt.Println(okStyle.Render("    ok    running as root"))
		fmt.Println()
		return true
	}
	fmt.Println(failStyle.Render(fmt.Sprintf("    fail  running as euid %d; apply requires root", euid)))
	fmt.Println()
	return false
}

func printToolReport(results *prerequisites.CheckResults) bool {
	fmt.Println(summarySectionStyle.Render("  Tools"))
	for _, r := range results.Results {
		switch {
		case r.Found:
			fmt.Println(okStyle.Render(fmt.Sprintf("    ok    %-12s %s", r.Tool.Name, r.Path)))
		case r.Tool.Required:
			fmt.Println(failStyle.Render(fmt.Sprintf("    fail  %-12s missing (%s)", r.Tool.Name, r.Tool.Description)))
		default:
			fmt.Println(warnStyle.Render(fmt.Sprintf("    warn  %-12s missing; the packages phase installs it", r.Tool.Name)))
		}
	}
	fmt.Println()
	return !results.HasErrors()
}

func printConfigReport(cfg *config.Config) bool {
	fmt.Println(summarySectionStyle.Render("  Configuration"))
	missing := cfg.MissingRequired()
	if len(missing) == 0 {
		fmt.Println(okStyle.Render("    ok    all required values present"))
		return true
	}
	for _, key := range missing {
		fmt.Println(failStyle.Render(fmt.Sprintf("    fail  %s not set", key)))
	}
	fmt.Println(summaryDimStyle.Render("    set the values above in the config file or environment"))
	return false
}
