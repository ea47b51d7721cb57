package server

import (
	"errors"
	"github.com/viant/mcp-protocol/schema"
	"log/slog"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithInstructions sets the instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		s.instructions = &instructions
		return nil
	}
}

// WithLoggerName sets the logger name used in client log notifications.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithLogger sets the process logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("logger was nil")
		}
		s.logger = logger
		return nil
	}
}

// WithTool registers a tool with its handler.
func WithTool(tool schema.Tool, handler ToolHandler) Option {
	return func(s *Server) error {
		s.pending = append(s.pending, registeredTool{tool: tool, handler: handler})
		return nil
	}
}
