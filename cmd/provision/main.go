// Package main is the entry point for the provision CLI.
//
// provision deploys the bot hosting web application onto a Debian or
// Ubuntu host: system packages, the application checkout, its Python
// environment, database migrations, an Nginx site, and a systemd
// service. Runs are idempotent and can be re-executed after a failure.
//
// Commands: init, apply, doctor.
//
// For detailed usage information, run:
//
//	provision --help
package main

import (
	"fmt"
	"os"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/cmd/provision/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
