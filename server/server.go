package server

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcp-protocol/syncmap"
	"io"
	"log/slog"
	"sync/atomic"
)

// State is a server lifecycle stage. Transitions only move forward.
type State int32

const (
	StateUninitialized State = iota
	// StateRegistering covers tool registration; New returns a server in this state, ready to serve.
	StateRegistering
	StateServing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRegistering:
		return "registering"
	case StateServing:
		return "serving"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

var (
	// ErrClosed is returned by Serve once the session ended.
	ErrClosed = errors.New("server closed")
	// ErrServing is returned by Serve while a session is active.
	ErrServing = errors.New("server already serving")
)

// Server represents MCP protocol server with an immutable tool registry
type Server struct {
	info         schema.Implementation
	instructions *string
	loggerName   string
	logger       *slog.Logger

	pending []registeredTool
	tools   *registry
	state   atomic.Int32
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// ListTools returns the registered tool descriptors in registration order.
func (s *Server) ListTools() []schema.Tool {
	return s.tools.list()
}

// CallTool dispatches request to the registered tool handler. Unknown tool names
// are reported as protocol errors.
func (s *Server) CallTool(ctx context.Context, request *schema.CallToolRequest) (*schema.CallToolResult, *jsonrpc.Error) {
	name := request.Params.Name
	s.logger.InfoContext(ctx, "client called tool", "name", name)
	handler, ok := s.tools.lookup(name)
	if !ok {
		s.logger.ErrorContext(ctx, "unknown tool requested", "name", name)
		return nil, NewUnknownTool(name)
	}
	result, rpcErr := handler(ctx, request)
	if rpcErr != nil {
		return nil, rpcErr
	}
	if result == nil || len(result.Content) == 0 {
		return nil, jsonrpc.NewInternalError("tool "+name+" returned no content", nil)
	}
	return result, nil
}

// NewHandler creates a new handler instance bound to transport
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport, uuid.NewString())
}

func (s *Server) newHandler(_ context.Context, transport transport.Transport, sessionID string) *Handler {
	ret := &Handler{
		server:         s,
		Notifier:       transport,
		sessionID:      sessionID,
		activeContexts: syncmap.NewMap[string, *activeContext](),
	}
	ret.logger = NewLogger(s.loggerName, &ret.loggingLevel, ret.Notifier)
	return ret
}

// Serve runs a single session over reader and writer until the stream ends or
// ctx is cancelled. A server serves at most one session in its lifetime.
func (s *Server) Serve(ctx context.Context, reader io.Reader, writer io.Writer) error {
	if !s.state.CompareAndSwap(int32(StateRegistering), int32(StateServing)) {
		if s.State() == StateClosed {
			return ErrClosed
		}
		return ErrServing
	}
	defer s.state.Store(int32(StateClosed))
	session := newSession(ctx, s, reader, writer)
	return session.run(ctx)
}

// New creates a new Server instance and registers its tools
func New(options ...Option) (*Server, error) {
	s := &Server{
		info: schema.Implementation{
			Name:    "MCP",
			Version: "0.1",
		},
		loggerName: "server",
		logger:     slog.New(slog.DiscardHandler),
	}
	s.state.Store(int32(StateRegistering))
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	tools, err := newRegistry(s.pending)
	if err != nil {
		return nil, err
	}
	s.tools = tools
	s.pending = nil
	return s, nil
}
