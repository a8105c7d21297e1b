package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ServeStdio runs the server over a line-delimited JSON-RPC stream. It
// blocks until the input closes or the context is cancelled. Each request is
// handled fully before the next line is read; the storage round trip is the
// only suspension point.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp := Response{
				JSONRPC: "2.0",
				Error:   &Error{Code: CodeParseError, Message: err.Error()},
			}
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("encode error response: %w", err)
			}
			continue
		}

		// Notifications expect no reply.
		if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		if err := encoder.Encode(s.HandleRequest(ctx, req)); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read transport: %w", err)
	}
	return nil
}

// HTTPHandler returns a handler for streamable HTTP transport: POST a
// JSON-RPC body, receive a JSON response.
func (s *Server) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Response{
				JSONRPC: "2.0",
				Error:   &Error{Code: CodeParseError, Message: err.Error()},
			})
			return
		}

		resp := s.HandleRequest(r.Context(), req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
}

// SSEHandler returns a handler for Server-Sent Events transport: clients
// POST a JSON-RPC body and receive the response as an SSE message event.
func (s *Server) SSEHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeSSEEvent(w, flusher, "error", Response{
				JSONRPC: "2.0",
				Error:   &Error{Code: CodeParseError, Message: err.Error()},
			})
			return
		}

		resp := s.HandleRequest(r.Context(), req)
		writeSSEEvent(w, flusher, "message", resp)
	})
}

func writeSSEEvent(w http.ResponseWriter, f http.Flusher, event string, data any) {
	jsonData, _ := json.Marshal(data)
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return
	}
	f.Flush()
}
