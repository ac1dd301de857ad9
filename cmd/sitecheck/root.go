// Package main provides the entry point for the sitecheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sitecheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitecheck",
		Short: "Publish-readiness reporter for static marketing websites",
		Long: `Sitecheck audits static marketing websites for publish readiness.
It validates the configured color palette against the hex-color format,
records the site's architecture, accessibility, responsiveness, quality,
and deployment requirements, and renders a pass-rate report.

Site settings are read from a .sitecheck manifest in the current or home
directory. Without a manifest, the built-in defaults are used.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
