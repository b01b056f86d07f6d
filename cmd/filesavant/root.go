package main

import (
	"github.com/spf13/cobra"

	"filesavant/internal/version"
)

var (
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "filesavant",
	Short: "FileSavant - file metadata service",
	Long: `FileSavant exposes file system metadata (ownership, permissions,
timestamps, inode-level attributes) as structured JSON.

It can serve metadata over the Model Context Protocol (MCP) via stdio,
list a directory directly on the command line, or write compressed
metadata snapshots for offline comparison.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("FileSavant version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default from config)")
}
