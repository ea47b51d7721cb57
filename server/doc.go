// Package server provides the MCP tool server: an immutable tool registry,
// the JSON-RPC method handler and a sequential newline-delimited stdio session.
//
// Tools are registered once through options and cannot change afterwards:
//
//	s, _ := server.New(server.WithTool(tool, handler), server.WithLogger(logger))
//	err := s.ServeStdio(ctx)
//
// Tool handlers report their own failures as content; only protocol failures
// (unknown tool, malformed request) reach the client as JSON-RPC errors.
package server
