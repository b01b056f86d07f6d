package storage

import (
	"time"
)

// ToolCallRecord represents a single tool invocation record
type ToolCallRecord struct {
	ID            int64
	ToolName      string
	EntryCount    int
	ResponseBytes int
	ExecutionMs   int64
	RecordedAt    time.Time
}

// ToolCallAggregate represents aggregated stats for a tool
type ToolCallAggregate struct {
	ToolName     string  `json:"toolName"`
	CallCount    int64   `json:"callCount"`
	TotalEntries int64   `json:"totalEntries"`
	TotalBytes   int64   `json:"totalBytes"`
	TotalMs      int64   `json:"totalMs"`
	AvgEntries   float64 `json:"avgEntries"`
	AvgLatencyMs float64 `json:"avgLatencyMs"`
}

// RecordToolCall persists a tool invocation to SQLite
func (db *DB) RecordToolCall(toolName string, entryCount, responseBytes int, executionMs int64) error {
	_, err := db.conn.Exec(`
		INSERT INTO tool_metrics (
			tool_name, entry_count, response_bytes, execution_ms, recorded_at
		) VALUES (?, ?, ?, ?, ?)
	`, toolName, entryCount, responseBytes, executionMs, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetToolAggregates returns aggregated metrics for all tools since the given time
func (db *DB) GetToolAggregates(since time.Time) (map[string]*ToolCallAggregate, error) {
	rows, err := db.conn.Query(`
		SELECT
			tool_name,
			COUNT(*) as call_count,
			SUM(entry_count) as total_entries,
			SUM(response_bytes) as total_bytes,
			SUM(execution_ms) as total_ms
		FROM tool_metrics
		WHERE recorded_at >= ?
		GROUP BY tool_name
		ORDER BY call_count DESC
	`, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]*ToolCallAggregate)
	for rows.Next() {
		var agg ToolCallAggregate
		if err := rows.Scan(
			&agg.ToolName,
			&agg.CallCount,
			&agg.TotalEntries,
			&agg.TotalBytes,
			&agg.TotalMs,
		); err != nil {
			return nil, err
		}
		if agg.CallCount > 0 {
			agg.AvgEntries = float64(agg.TotalEntries) / float64(agg.CallCount)
			agg.AvgLatencyMs = float64(agg.TotalMs) / float64(agg.CallCount)
		}
		result[agg.ToolName] = &agg
	}

	return result, rows.Err()
}

// GetRecentToolCalls returns the most recent invocation records, newest first
func (db *DB) GetRecentToolCalls(limit int) ([]ToolCallRecord, error) {
	rows, err := db.conn.Query(`
		SELECT id, tool_name, entry_count, response_bytes, execution_ms, recorded_at
		FROM tool_metrics
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []ToolCallRecord
	for rows.Next() {
		var rec ToolCallRecord
		var recordedAt string
		if err := rows.Scan(&rec.ID, &rec.ToolName, &rec.EntryCount,
			&rec.ResponseBytes, &rec.ExecutionMs, &recordedAt); err != nil {
			return nil, err
		}
		rec.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		records = append(records, rec)
	}

	return records, rows.Err()
}
