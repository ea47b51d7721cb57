package server

import (
	"context"
	"os"
)

// ServeStdio runs the session over the process standard input and output.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}
