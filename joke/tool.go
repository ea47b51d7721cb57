// Package joke exposes the random Chuck Norris joke as an MCP tool.
package joke

import (
	"context"
	"github.com/viant/chucknorris-mcp/chucknorris"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"log/slog"
)

const (
	// ToolName is the registered name of the tool.
	ToolName        = "get_random_joke"
	toolDescription = "Get a random Chuck Norris joke"

	contentTypeText = "text"
)

// Fetcher returns a single joke.
type Fetcher interface {
	RandomJoke(ctx context.Context) (string, error)
}

// Tool answers get_random_joke calls.
type Tool struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// Descriptor returns the tool definition advertised by tools/list.
func Descriptor() schema.Tool {
	description := toolDescription
	return schema.Tool{
		Name:        ToolName,
		Description: &description,
		InputSchema: schema.ToolInputSchema{Type: "object"},
	}
}

// Call fetches a joke. Fetch failures are reported as "Error: ..." text content, never as protocol errors.
func (t *Tool) Call(ctx context.Context, request *schema.CallToolRequest) (*schema.CallToolResult, *jsonrpc.Error) {
	t.logger.InfoContext(ctx, "handling get_random_joke tool call", "arguments", request.Params.Arguments)

	joke, err := t.fetcher.RandomJoke(ctx)
	if err != nil {
		t.logger.ErrorContext(ctx, "error in get_random_joke handler", "error", err)
		return textResult("Error: " + err.Error()), nil
	}
	t.logger.InfoContext(ctx, "returning joke to client", "joke", chucknorris.Preview(joke))
	return textResult(joke), nil
}

func textResult(text string) *schema.CallToolResult {
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{schema.TextContent{Type: contentTypeText, Text: text}},
	}
}

// New creates the tool backed by fetcher.
func New(fetcher Fetcher, logger *slog.Logger) *Tool {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tool{fetcher: fetcher, logger: logger.With("tool", ToolName)}
}
