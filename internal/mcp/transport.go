package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// MaxMessageSize is the maximum size for a single frame (1MB). Inbound
// requests are tiny, but the limit leaves room for clients that batch
// arguments into one line.
const MaxMessageSize = 1024 * 1024

// malformedFrameError marks a line that was read intact but could not be
// decoded. The frame is droppable; the stream itself is still good.
type malformedFrameError struct {
	err error
}

func (e *malformedFrameError) Error() string {
	return "error parsing JSON-RPC message: " + e.err.Error()
}

func (e *malformedFrameError) Unwrap() error {
	return e.err
}

// readMessage reads one newline-delimited JSON-RPC frame from the input stream
func (s *Server) readMessage() (*Message, error) {
	// Lazily initialize the scanner on first use
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.stdin)
		s.scanner.Buffer(make([]byte, MaxMessageSize), MaxMessageSize)
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading from stdin: %w", err)
		}
		return nil, io.EOF
	}

	line := s.scanner.Text()
	s.logger.Debug("Received message", "raw", line)

	var msg Message
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		return nil, &malformedFrameError{err: err}
	}

	return &msg, nil
}

// writeMessage writes a JSON-RPC message as one line on the output stream.
// Serialized under a mutex so watcher notifications can never interleave
// with a response mid-line.
func (s *Server) writeMessage(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling JSON-RPC message: %w", err)
	}

	s.logger.Debug("Sending message", "raw", string(data))

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := fmt.Fprintf(s.stdout, "%s\n", data); err != nil {
		return fmt.Errorf("error writing to stdout: %w", err)
	}

	return nil
}
