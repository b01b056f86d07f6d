package mcp

// handleMessage processes an incoming message and returns a response, or nil
// when the message warrants no response line (notifications, unknown
// methods, unknown tools).
func (s *Server) handleMessage(msg *Message) *Message {
	if msg.IsNotification() {
		s.handleNotification(msg)
		return nil
	}

	if msg.IsRequest() {
		return s.handleRequest(msg)
	}

	// Neither request nor notification (e.g. a stray response frame);
	// nothing to do with it.
	s.logger.Debug("Ignoring non-request message")
	return nil
}

// handleRequest dispatches a request through the method table. Requests for
// methods outside the table are dropped without a response; that
// permissiveness is part of the observable contract.
func (s *Server) handleRequest(msg *Message) *Message {
	s.logger.Debug("Handling request",
		"method", msg.Method,
		"id", msg.Id,
	)

	handler, ok := s.handlers[msg.Method]
	if !ok {
		s.logger.Debug("Unknown method, dropping request", "method", msg.Method)
		return nil
	}

	return handler(msg)
}

func (s *Server) handleNotification(msg *Message) {
	s.logger.Debug("Handling notification", "method", msg.Method)

	switch msg.Method {
	case "notifications/initialized":
		s.logger.Info("Client initialized")
	default:
		s.logger.Debug("Unknown notification", "method", msg.Method)
	}
}

// ServerCapabilities represents the capabilities exposed by the server
type ServerCapabilities struct {
	Tools *ToolsCapability `json:"tools,omitempty"`
}

// ToolsCapability represents the tools capability
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ServerInfo identifies the server to the client
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InitializeResult represents the result of the initialize request
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ServerInfo         `json:"serverInfo"`
}

func (s *Server) handleInitialize(msg *Message) *Message {
	if params, ok := msg.Params.(map[string]interface{}); ok {
		s.logger.Info("MCP server initializing", "clientInfo", params["clientInfo"])
	}

	result := &InitializeResult{
		ProtocolVersion: "2024-11-05",
		Capabilities: ServerCapabilities{
			Tools: &ToolsCapability{
				ListChanged: true,
			},
		},
		ServerInfo: ServerInfo{
			Name:    "FileSavantAI",
			Version: s.version,
		},
	}

	return NewResultMessage(msg.Id, result)
}

// handleListTools replies with the static tool catalog. The result is the
// bare definitions array, matching what callers of this protocol expect.
func (s *Server) handleListTools(msg *Message) *Message {
	return NewResultMessage(msg.Id, s.GetToolDefinitions())
}

// handleCallTool routes a tools/call request to the named tool handler.
// Unknown tool names produce no response, like unknown methods.
func (s *Server) handleCallTool(msg *Message) *Message {
	params, ok := msg.Params.(map[string]interface{})
	if !ok {
		return NewErrorMessage(msg.Id, CodeInvalidParams, "Invalid params: expected object")
	}

	toolName, ok := params["name"].(string)
	if !ok {
		return NewErrorMessage(msg.Id, CodeInvalidParams, "Missing tool name")
	}

	handler, exists := s.tools[toolName]
	if !exists {
		s.logger.Debug("Unknown tool, dropping request", "tool", toolName)
		return nil
	}

	args, ok := params["arguments"].(map[string]interface{})
	if !ok {
		args = make(map[string]interface{})
	}

	s.logger.Info("Calling tool", "tool", toolName)

	return handler(msg.Id, args)
}
