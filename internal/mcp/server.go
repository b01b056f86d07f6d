// Package mcp implements the FileSavant MCP server: a newline-delimited
// JSON-RPC 2.0 exchange over stdio exposing file metadata tools.
package mcp

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"filesavant/internal/storage"
	"filesavant/internal/watcher"
)

// Server reads requests one line at a time, dispatches them, and writes
// exactly one response line per known request. Processing is strictly
// synchronous: a request is fully handled and answered before the next
// line is read.
type Server struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	writeMu sync.Mutex

	logger    *slog.Logger
	version   string
	sessionID string

	handlers map[string]func(*Message) *Message
	tools    map[string]ToolHandler

	metrics *MetricsAggregator
	watch   *watcher.Watcher
}

// NewServer creates a new MCP server bound to os.Stdin/os.Stdout
func NewServer(version string, logger *slog.Logger) *Server {
	s := &Server{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		logger:    logger,
		version:   version,
		sessionID: uuid.NewString(),
		tools:     make(map[string]ToolHandler),
		metrics:   NewMetricsAggregator(),
	}

	// Data-driven dispatch: method name to handler. Methods absent from
	// this table are dropped without a response.
	s.handlers = map[string]func(*Message) *Message{
		"initialize": s.handleInitialize,
		"tools/list": s.handleListTools,
		"tools/call": s.handleCallTool,
	}

	s.RegisterTools()

	return s
}

// Start announces the server and begins processing messages. It returns nil
// when the input stream reaches EOF.
func (s *Server) Start() error {
	s.logger.Info("MCP server starting",
		"version", s.version,
		"session", s.sessionID,
	)

	// Unsolicited startup notification; it has no id and callers must not
	// wait for a response to it.
	if err := s.SendNotification("notifications/initialized", nil); err != nil {
		return err
	}

	for {
		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("MCP server shutting down (EOF)")
				return nil
			}
			var malformed *malformedFrameError
			if errors.As(err, &malformed) {
				// The line was read but didn't decode; drop it and keep going.
				s.logger.Error("Dropping malformed frame", "error", err.Error())
				continue
			}
			// Stream-level failure. Scanner errors are sticky (an oversized
			// line fails every subsequent Scan), so retrying would spin on
			// the same error forever.
			s.logger.Error("Input stream failed", "error", err.Error())
			return err
		}

		response := s.handleMessage(msg)

		// Unknown methods and notifications generate no response line.
		if response != nil {
			if err := s.writeMessage(response); err != nil {
				s.logger.Error("Error writing response", "error", err.Error())
			}
		}
	}
}

// SendNotification sends a JSON-RPC notification to the client
func (s *Server) SendNotification(method string, params interface{}) error {
	return s.writeMessage(NewNotificationMessage(method, params))
}

// SetStdin sets the input stream (for testing)
func (s *Server) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil // Reset scanner so it will be recreated with new reader
}

// SetStdout sets the output stream (for testing)
func (s *Server) SetStdout(w io.Writer) {
	s.stdout = w
}

// SessionID returns this server's session identifier
func (s *Server) SessionID() string {
	return s.sessionID
}

// Metrics returns the server's metrics aggregator
func (s *Server) Metrics() *MetricsAggregator {
	return s.metrics
}

// SetMetricsDB attaches a SQLite sink to the metrics aggregator
func (s *Server) SetMetricsDB(db *storage.DB) {
	s.metrics.SetDB(db)
}

// SetWatcher attaches a directory watcher. Directories listed during the
// session are added to it, and change events are forwarded to the client
// as notifications/fs/changed.
func (s *Server) SetWatcher(w *watcher.Watcher) {
	s.watch = w
	w.OnChange(func(ev watcher.Event) {
		err := s.SendNotification("notifications/fs/changed", map[string]interface{}{
			"path":  ev.Path,
			"event": ev.Type.String(),
		})
		if err != nil {
			s.logger.Error("Failed to send change notification", "error", err.Error())
		}
	})
}
