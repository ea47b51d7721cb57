package server

import (
	"context"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type (
	// InitializeResult is schema.InitializeResult whose capabilities always advertise logging.
	InitializeResult struct {
		schema.InitializeResult
		Capabilities ServerCapabilities `json:"capabilities"`
	}

	// ServerCapabilities emits logging even when empty; schema.ServerCapabilities omits an empty map.
	ServerCapabilities struct {
		schema.ServerCapabilities
		Logging map[string]interface{} `json:"logging"`
	}
)

// Initialize handles the initialize method
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*InitializeResult, *jsonrpc.Error) {
	params := &schema.InitializeRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	h.clientInitialize = params
	h.server.logger.InfoContext(ctx, "client connected", "session", h.sessionID,
		"client", params.ClientInfo.Name, "clientVersion", params.ClientInfo.Version, "protocolVersion", params.ProtocolVersion)
	listChanged := false
	return &InitializeResult{
		InitializeResult: schema.InitializeResult{
			ProtocolVersion: NegotiateProtocolVersion(params.ProtocolVersion),
			ServerInfo:      h.server.info,
			Instructions:    h.server.instructions,
		},
		Capabilities: ServerCapabilities{
			ServerCapabilities: schema.ServerCapabilities{
				Tools: &schema.ServerCapabilitiesTools{ListChanged: &listChanged},
			},
			Logging: map[string]interface{}{},
		},
	}, nil
}

// Ping handles the ping method
func (h *Handler) Ping(_ context.Context, _ *jsonrpc.Request) (*schema.PingResult, *jsonrpc.Error) {
	return &schema.PingResult{}, nil
}
