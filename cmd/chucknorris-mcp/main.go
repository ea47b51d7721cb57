package main

import (
	"context"
	"fmt"
	mcp "github.com/viant/chucknorris-mcp"
	"github.com/viant/chucknorris-mcp/logging"
	"github.com/viant/chucknorris-mcp/server"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	options, err := mcp.ParseOptions(args, nil)
	if err != nil {
		if mcp.IsHelp(err) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		return 1
	}

	handler, closer, err := logging.NewHandler(logging.Options{Debug: options.Debug, File: options.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return 1
	}
	defer closer.Close()
	logger := slog.New(server.NewLogHandler(handler)).With("logger", mcp.ServerName)

	logger.Info("initializing Chuck Norris MCP server")
	srv, err := mcp.NewServer(options, logger)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting Chuck Norris MCP server")
	if err := srv.ServeStdio(ctx); err != nil {
		logger.Error("server crashed", "error", err)
		return 1
	}
	if ctx.Err() != nil {
		logger.Info("server shutdown requested by user")
	}
	return 0
}
