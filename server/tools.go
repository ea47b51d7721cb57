package server

import (
	"context"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	params := &schema.ListToolsRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	h.server.logger.DebugContext(ctx, "client requested tool list", "session", h.sessionID)
	tools := h.server.ListTools()
	h.server.logger.InfoContext(ctx, "returning tools to client", "session", h.sessionID, "count", len(tools))
	return &schema.ListToolsResult{Tools: tools}, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	callToolRequest := &schema.CallToolRequest{Jsonrpc: request.Jsonrpc, Method: request.Method}
	if id, ok := jsonrpc.AsRequestIntId(request.Id); ok && id > 0 {
		callToolRequest.Id = schema.RequestId(id)
	}
	if err := unmarshalParams(request, &callToolRequest.Params); err != nil {
		return nil, err
	}
	if callToolRequest.Params.Name == "" {
		return nil, jsonrpc.NewInvalidParamsError("tool name is required", request.Params)
	}
	if callToolRequest.Params.Arguments == nil {
		callToolRequest.Params.Arguments = map[string]interface{}{}
	}
	return h.server.CallTool(ctx, callToolRequest)
}
