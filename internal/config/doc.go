// Package config provides configuration management for sitecheck.
// It holds the CLI-derived Config, the YAML site manifest, and the XDG
// directory helpers used for the history database.
package config
