package tools

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/etrade-cli/internal/domain"
	log "github.com/sirupsen/logrus"
)

// ListTool is the reserved tool name that returns the registry descriptors.
const ListTool = "tools/list"

const maxRequestBytes = 1 << 20

type Request struct {
	ID        json.RawMessage `json:"id,omitempty"`
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type ResponseError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Response struct {
	ID     json.RawMessage `json:"id"`
	Result any             `json:"result,omitempty"`
	Error  *ResponseError  `json:"error,omitempty"`
}

// Server answers one JSON request per input line with one JSON response line.
// Requests are handled in order.
type Server struct {
	registry *Registry
	logger   log.FieldLogger
}

func NewServer(registry *Registry, logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Server{registry: registry, logger: logger}
}

func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		response := s.handle(ctx, line)
		if err := encoder.Encode(response); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}

func (s *Server) handle(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{ID: json.RawMessage("null"), Error: &ResponseError{Kind: "invalid_request", Message: err.Error()}}
	}
	if len(req.ID) == 0 {
		req.ID = json.RawMessage("null")
	}

	logger := s.logger.WithField("tool", req.Tool)
	if req.Tool == ListTool {
		return Response{ID: req.ID, Result: s.registry.List()}
	}

	result, err := s.registry.Call(ctx, req.Tool, req.Arguments)
	if err != nil {
		logger.WithError(err).Warn("tool call failed")
		return Response{ID: req.ID, Error: responseError(err)}
	}

	logger.Debug("tool call succeeded")
	if result == nil {
		// Keep "result" present so callers can tell an empty success from an error.
		return Response{ID: req.ID, Result: json.RawMessage("null")}
	}
	return Response{ID: req.ID, Result: result}
}

func responseError(err error) *ResponseError {
	kind := string(domain.KindOf(err))
	switch {
	case kind != "":
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kind = "canceled"
	default:
		kind = "internal"
	}
	return &ResponseError{Kind: kind, Message: err.Error()}
}
