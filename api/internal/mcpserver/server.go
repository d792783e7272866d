package mcpserver

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"defi-navigator/api/internal/tools"
)

const protocolVersion = "2024-11-05"

// Server exposes the dispatcher over the structured list/call protocol.
// It is a thin adapter: every reply is the dispatcher's envelope.
type Server struct {
	Name    string
	Version string

	disp *tools.Dispatcher
}

func New(disp *tools.Dispatcher) *Server {
	return &Server{
		Name:    "defi-navigator",
		Version: "1.0.0",
		disp:    disp,
	}
}

// Serve reads newline-delimited JSON-RPC requests from r and writes
// responses to w until EOF or context cancellation.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	enc := json.NewEncoder(w)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		resp := s.Handle(ctx, []byte(line))
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return sc.Err()
}

// Handle processes one raw request. A nil return means no response is
// due (notifications).
func (s *Server) Handle(ctx context.Context, raw []byte) *response {
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return &response{
			JSONRPC: "2.0",
			Error:   &rpcError{Code: codeParseError, Message: "parse error: " + err.Error()},
		}
	}

	// Notifications carry no id and expect no reply.
	if len(req.ID) == 0 {
		if !strings.HasPrefix(req.Method, "notifications/") {
			log.Printf("mcp: dropping notification with method %q", req.Method)
		}
		return nil
	}

	resp := &response{JSONRPC: "2.0", ID: req.ID}
	switch req.Method {
	case "initialize":
		resp.Result = initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    map[string]any{"tools": map[string]any{}},
			ServerInfo:      serverInfo{Name: s.Name, Version: s.Version},
		}
	case "ping":
		resp.Result = map[string]any{}
	case "tools/list":
		resp.Result = map[string]any{"tools": s.disp.ListTools()}
	case "tools/call":
		var params callParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			resp.Error = &rpcError{Code: codeInvalidParams, Message: "invalid params: " + err.Error()}
			break
		}
		// Failures stay inside the envelope (isError), not JSON-RPC errors.
		resp.Result = s.disp.CallTool(ctx, params.Name, params.Arguments)
	default:
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: "method not found: " + req.Method}
	}
	return resp
}
