package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"filesavant/internal/config"
	"filesavant/internal/mcp"
	"filesavant/internal/slogutil"
	"filesavant/internal/storage"
	"filesavant/internal/version"
	"filesavant/internal/watcher"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server.

The server communicates via stdio using newline-delimited JSON-RPC 2.0.
It exposes one tool:
  - list_files: list all files in a directory with full metadata

Logs go to stderr (or a configured file); stdout carries only protocol
frames. This command is typically invoked by MCP clients and not directly
by users.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return err
	}

	logger, cleanup, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("Starting MCP server", "version", version.Version)

	server := mcp.NewServer(version.Version, logger)

	if cfg.Metrics.Enabled {
		// Metrics are observability only; a broken database must not keep
		// the server from starting.
		db, err := storage.Open(".", logger)
		if err != nil {
			logger.Warn("Metrics disabled: cannot open database", "error", err.Error())
		} else {
			defer func() { _ = db.Close() }()
			server.SetMetricsDB(db)
		}
	}

	if cfg.Watcher.Enabled {
		w, err := watcher.New(logger, time.Duration(cfg.Watcher.DebounceMs)*time.Millisecond)
		if err != nil {
			logger.Warn("Watcher disabled", "error", err.Error())
		} else {
			defer func() { _ = w.Stop() }()
			server.SetWatcher(w)
			w.Start()
		}
	}

	if err := server.Start(); err != nil {
		logger.Error("MCP server error", "error", err.Error())
		return err
	}

	return nil
}

// buildLogger constructs the server logger from config and the --log-level
// flag. Stdout is the protocol channel, so logs target stderr or a file.
func buildLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	levelStr := cfg.Logging.Level
	if logLevelFlag != "" {
		levelStr = logLevelFlag
	}
	level := slogutil.LevelFromString(levelStr)

	if cfg.Logging.File != "" {
		logger, f, err := slogutil.NewFileLogger(cfg.Logging.File, level)
		if err != nil {
			return nil, nil, err
		}
		return logger, func() { _ = f.Close() }, nil
	}

	return slogutil.NewLogger(os.Stderr, level), func() {}, nil
}
