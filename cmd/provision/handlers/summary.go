package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/config"
	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/provisioning"
)

var (
	summaryTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	summarySectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	summaryNameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	summaryValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	summaryDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// printApplySuccess outputs the deployed endpoints and the commands to
// inspect the running service.
func printApplySuccess(cfg *config.Config, state *provisioning.State) {
	fmt.Println()
	fmt.Println(summaryTitleStyle.Render("  Deployment complete: " + cfg.Domain))
	fmt.Println(summaryDimStyle.Render("  " + strings.Repeat("=", 30)))
	fmt.Println()

	fmt.Println(summarySectionStyle.Render("  Endpoints"))
	printSummaryRow("site", "http://"+cfg.Domain+"/")
	printSummaryRow("upstream", "http://127.0.0.1:8000/")
	fmt.Println()

	fmt.Println(summarySectionStyle.Render("  Artifacts"))
	printSummaryRow("application", cfg.AppDir)
	printSummaryRow("secrets", state.EnvFile)
	printSummaryRow("nginx site", state.SiteFile)
	printSummaryRow("systemd unit", state.UnitFile)
	fmt.Println()

	fmt.Println(summarySectionStyle.Render("  Next steps"))
	fmt.Println(summaryDimStyle.Render("    systemctl status " + cfg.ServiceName))
	fmt.Println(summaryDimStyle.Render("    journalctl -u " + cfg.ServiceName + " -f"))
	fmt.Println()
}

func printSummaryRow(name, value string) {
	fmt.Printf("  %s  %s\n",
		summaryNameStyle.Render(fmt.Sprintf("%-14s", name)),
		summaryValueStyle.Render(value))
}
