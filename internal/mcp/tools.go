package mcp

import (
	"encoding/json"
	"time"

	"filesavant/internal/fsmeta"
)

// Tool describes one tool exposed via tools/list. The catalog is static and
// hardcoded, not derived from introspection.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolHandler handles one tool invocation and returns the full response
// message, or nil when the request warrants no response.
type ToolHandler func(id interface{}, args map[string]interface{}) *Message

// GetToolDefinitions returns all tool definitions
func (s *Server) GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "list_files",
			Description: "List all files in a directory",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"directory": map[string]interface{}{
						"type":        "string",
						"description": "Directory path",
					},
				},
				"required": []string{"directory"},
			},
		},
	}
}

// RegisterTools wires tool names to their handlers
func (s *Server) RegisterTools() {
	s.tools["list_files"] = s.handleListFiles
}

// handleListFiles implements the list_files tool: enumerate a directory and
// return the metadata array. The result is the bare FileRecord array;
// individual unreadable entries are already omitted by the lister.
func (s *Server) handleListFiles(id interface{}, args map[string]interface{}) *Message {
	directory, ok := args["directory"].(string)
	if !ok {
		// No filesystem access happens for a malformed request.
		return NewErrorMessage(id, CodeInvalidParams, "Missing directory parameter")
	}

	start := time.Now()

	records, err := fsmeta.List(directory)
	if err != nil {
		s.logger.Warn("Directory listing failed",
			"directory", directory,
			"error", err.Error(),
		)
		return NewErrorMessage(id, CodeDirectoryError, "Cannot open directory")
	}

	s.metrics.Record("list_files", len(records), measureJSONSize(records), time.Since(start).Milliseconds())

	if s.watch != nil {
		if err := s.watch.Add(directory); err != nil {
			s.logger.Debug("Cannot watch directory",
				"directory", directory,
				"error", err.Error(),
			)
		}
	}

	return NewResultMessage(id, records)
}

// measureJSONSize returns the approximate byte size of a value when JSON-encoded
func measureJSONSize(v interface{}) int {
	data, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(data)
}
