package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/sitecheck.yaml
var manifestTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new sitecheck manifest file",
		Long: `Init creates a new .sitecheck manifest file in the current directory.

The generated file includes:
- The default project name and version
- The default color palette
- Commented examples for skipping check groups

Examples:
  # Create .sitecheck in current directory
  sitecheck init

  # Create manifest at a specific path
  sitecheck init -o mysite.yaml

  # Force overwrite existing file
  sitecheck init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultManifestFile,
		"Output file path for the manifest")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing manifest file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("manifest file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := manifestTemplate.ReadFile("templates/sitecheck.yaml")
	if err != nil {
		return fmt.Errorf("failed to read manifest template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write manifest file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created manifest file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure your site, such as:")
	fmt.Fprintln(out, "  - Project name and version")
	fmt.Fprintln(out, "  - Color palette")
	fmt.Fprintln(out, "  - Check groups to skip")

	return nil
}
