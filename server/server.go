// Package server binds the dispatcher to MCP's JSON-RPC surface. It handles
// exactly two business message kinds, tools/list and tools/call, plus the
// protocol handshake; everything else is a method-not-found error.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jonwraymond/toolfoundation/model"

	"github.com/jonwraymond/studyplanner/catalog"
	"github.com/jonwraymond/studyplanner/dispatcher"
)

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603
)

// Info identifies this server in the initialize response.
type Info struct {
	Name    string
	Version string
}

// Server owns the duplex channel bound to one dispatcher. It performs no
// business logic itself.
type Server struct {
	info       Info
	dispatcher *dispatcher.Dispatcher
	logger     *slog.Logger
}

// New creates a Server. A nil logger falls back to slog.Default.
func New(info Info, d *dispatcher.Dispatcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{info: info, dispatcher: d, logger: logger}
}

// Request is an incoming JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// TextContent is one text payload of a tool reply.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the tools/call result envelope. Tool-level failures set
// IsError on the envelope; they are never surfaced as JSON-RPC errors.
type CallResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// HandleRequest processes one JSON-RPC request and returns its response.
func (s *Server) HandleRequest(ctx context.Context, req Request) Response {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.ID)
	case "tools/list":
		return s.handleToolsList(req.ID)
	case "tools/call":
		return s.handleToolsCall(ctx, req.ID, req.Params)
	default:
		return Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &Error{
				Code:    CodeMethodNotFound,
				Message: fmt.Sprintf("method %s not found", req.Method),
			},
		}
	}
}

func (s *Server) handleInitialize(id any) Response {
	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]any{
			"protocolVersion": model.MCPVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    s.info.Name,
				"version": s.info.Version,
			},
		},
	}
}

func (s *Server) handleToolsList(id any) Response {
	tools := catalog.Tools()
	listed := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		listed = append(listed, map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"inputSchema": t.InputSchema,
		})
	}
	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"tools": listed},
	}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (s *Server) handleToolsCall(ctx context.Context, id any, params json.RawMessage) Response {
	var callParams toolsCallParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &Error{Code: CodeInvalidParams, Message: err.Error()},
		}
	}

	result := s.dispatcher.Invoke(ctx, callParams.Name, callParams.Arguments)
	s.logger.Info("tools/call", "tool", callParams.Name, "is_error", result.IsError)

	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Result: CallResult{
			Content: []TextContent{{Type: "text", Text: result.Text}},
			IsError: result.IsError,
		},
	}
}
