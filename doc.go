// Package mcp wires the Chuck Norris joke tool into a Model Context Protocol server.
//
// The server speaks newline-delimited JSON-RPC 2.0 over stdio and registers a single
// tool, get_random_joke, which fetches https://api.chucknorris.io/jokes/random.
// Failures of the upstream API are returned to the client as "Error: ..." text
// content; protocol level failures (unknown tool, malformed request) are returned
// as JSON-RPC errors.
//
// Example:
//
//	options, _ := mcp.ParseOptions(os.Args[1:], nil)
//	srv, _ := mcp.NewServer(options, logger)
//	err := srv.ServeStdio(ctx)
package mcp
