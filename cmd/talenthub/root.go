package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "talenthub",
	Short: "TalentHub portfolio server and admin CLI",
	Long: `TalentHub is a single-tenant portfolio content server.

It serves the public portfolio API (profile, projects, skills,
experiences) and a guarded mutation surface for the site owner.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
