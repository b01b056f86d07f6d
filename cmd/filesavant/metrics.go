package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"filesavant/internal/slogutil"
	"filesavant/internal/storage"
)

var (
	metricsSinceHours int
	metricsRecent     int
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show aggregated tool invocation metrics",
	Long: `Show aggregated metrics recorded by the MCP server: call counts,
entry totals, response sizes, and average latency per tool.

Metrics are read from .filesavant/filesavant.db in the current directory.`,
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().IntVar(&metricsSinceHours, "since", 24,
		"Aggregation window in hours")
	metricsCmd.Flags().IntVar(&metricsRecent, "recent", 0,
		"Show the N most recent invocations instead of aggregates")
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	logger := slogutil.NewLogger(os.Stderr, slog.LevelWarn)

	db, err := storage.Open(".", logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if metricsRecent > 0 {
		records, err := db.GetRecentToolCalls(metricsRecent)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			cmd.Println("No tool invocations recorded.")
			return nil
		}
		for _, rec := range records {
			cmd.Printf("%s  %-12s  %5d entries  %7d bytes  %4d ms\n",
				rec.RecordedAt.Format(time.RFC3339), rec.ToolName,
				rec.EntryCount, rec.ResponseBytes, rec.ExecutionMs)
		}
		return nil
	}

	since := time.Now().Add(-time.Duration(metricsSinceHours) * time.Hour)
	aggs, err := db.GetToolAggregates(since)
	if err != nil {
		return err
	}

	if len(aggs) == 0 {
		cmd.Println("No tool invocations recorded in window.")
		return nil
	}

	data, err := json.MarshalIndent(aggs, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))

	return nil
}
