package server

import (
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"slices"
)

// SupportedProtocolVersions lists revisions accepted during initialization, newest first.
var SupportedProtocolVersions = []string{schema.LatestProtocolVersion, "2025-03-26", "2024-11-05"}

// NegotiateProtocolVersion echoes the client revision when supported, otherwise the latest.
func NegotiateProtocolVersion(requested string) string {
	if slices.Contains(SupportedProtocolVersions, requested) {
		return requested
	}
	return schema.LatestProtocolVersion
}

// NewUnknownTool creates a protocol error for a tool name missing from the registry.
func NewUnknownTool(name string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, "Unknown tool: "+name, map[string]interface{}{"name": name})
}
