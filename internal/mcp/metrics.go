package mcp

import (
	"sync"

	"filesavant/internal/storage"
)

// ToolSummary holds aggregated in-memory stats for a single tool
type ToolSummary struct {
	ToolName     string `json:"toolName"`
	CallCount    int64  `json:"callCount"`
	TotalEntries int64  `json:"totalEntries"`
	TotalBytes   int64  `json:"totalBytes"`
	TotalMs      int64  `json:"totalMs"`
}

// AvgLatencyMs returns the average latency in milliseconds
func (t *ToolSummary) AvgLatencyMs() float64 {
	if t.CallCount == 0 {
		return 0
	}
	return float64(t.TotalMs) / float64(t.CallCount)
}

// MetricsAggregator collects per-tool invocation metrics in memory, with an
// optional SQLite sink. Recording never affects protocol behavior: sink
// failures are swallowed.
type MetricsAggregator struct {
	mu      sync.Mutex
	summary map[string]*ToolSummary
	db      *storage.DB
}

// NewMetricsAggregator creates an empty aggregator with no persistence
func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{
		summary: make(map[string]*ToolSummary),
	}
}

// SetDB attaches a SQLite sink for persistence
func (m *MetricsAggregator) SetDB(db *storage.DB) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db = db
}

// Record adds one invocation to the aggregate and, if a sink is attached,
// persists it.
func (m *MetricsAggregator) Record(toolName string, entries, responseBytes int, executionMs int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.summary[toolName]
	if !ok {
		s = &ToolSummary{ToolName: toolName}
		m.summary[toolName] = s
	}
	s.CallCount++
	s.TotalEntries += int64(entries)
	s.TotalBytes += int64(responseBytes)
	s.TotalMs += executionMs

	if m.db != nil {
		// Best effort; a broken sink must not fail the request.
		_ = m.db.RecordToolCall(toolName, entries, responseBytes, executionMs)
	}
}

// Summary returns a copy of the aggregate for a tool, or nil if it has not
// been called.
func (m *MetricsAggregator) Summary(toolName string) *ToolSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.summary[toolName]
	if !ok {
		return nil
	}
	cp := *s
	return &cp
}
