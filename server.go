package mcp

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/viant/chucknorris-mcp/chucknorris"
	"github.com/viant/chucknorris-mcp/joke"
	"github.com/viant/chucknorris-mcp/logging"
	"github.com/viant/chucknorris-mcp/server"
	"github.com/viant/mcp-protocol/schema"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const (
	// ServerName is advertised to clients on initialize.
	ServerName = "chuck-norris-server"
	// ServerVersion is advertised to clients on initialize.
	ServerVersion = "1.0.0"

	instructions = "Use get_random_joke to fetch a random Chuck Norris joke from api.chucknorris.io."
)

// Options defines the server command line and environment configuration.
type Options struct {
	Debug   bool          `short:"d" long:"debug" description:"enable debug logging" env:"CHUCK_NORRIS_DEBUG"`
	LogFile string        `short:"l" long:"log-file" description:"log file path" env:"CHUCK_NORRIS_LOG_FILE"`
	BaseURL string        `short:"u" long:"base-url" description:"Chuck Norris API base URL" env:"CHUCK_NORRIS_API_BASE" envDefault:"https://api.chucknorris.io/jokes"`
	Timeout time.Duration `short:"t" long:"timeout" description:"upstream request timeout" env:"CHUCK_NORRIS_TIMEOUT" envDefault:"10s"`
	EnvFile string        `short:"e" long:"env-file" description:"dotenv file supplying variables missing from the environment"`
}

// ParseOptions loads options from the environment, then applies command line
// flags on top. A nil environment reads the process environment. Variables
// from --env-file only fill in keys the environment does not set.
func ParseOptions(args []string, environment map[string]string) (*Options, error) {
	discovered := &Options{}
	if _, err := flags.ParseArgs(discovered, args); err != nil {
		return nil, err
	}
	if environment == nil {
		environment = env.ToMap(os.Environ())
	}
	if discovered.EnvFile != "" {
		values, err := godotenv.Read(discovered.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		environment = mergeEnvironment(environment, values)
	}

	options := &Options{}
	if err := env.ParseWithOptions(options, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	if options.LogFile == "" {
		options.LogFile = logging.DefaultFile()
	}
	if options.Timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout: %v", options.Timeout)
	}
	return options, nil
}

func mergeEnvironment(environment, fallback map[string]string) map[string]string {
	ret := make(map[string]string, len(environment)+len(fallback))
	for key, value := range fallback {
		ret[key] = value
	}
	for key, value := range environment {
		ret[key] = value
	}
	return ret
}

// IsHelp reports whether err is the result of a --help request.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

// NewServer creates the MCP server exposing the get_random_joke tool.
func NewServer(options *Options, logger *slog.Logger) (*server.Server, error) {
	if options == nil {
		return nil, errors.New("options were nil")
	}
	if logger == nil {
		return nil, errors.New("logger was nil")
	}
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = chucknorris.DefaultTimeout
	}
	client := chucknorris.New(options.BaseURL, &http.Client{Timeout: timeout}, logger)
	tool := joke.New(client, logger)

	logger.Info("setting up MCP tools")
	return server.New(
		server.WithImplementation(schema.Implementation{Name: ServerName, Version: ServerVersion}),
		server.WithInstructions(instructions),
		server.WithLoggerName(ServerName),
		server.WithLogger(logger),
		server.WithTool(joke.Descriptor(), tool.Call),
	)
}
