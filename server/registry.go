package server

import (
	"errors"
	"fmt"
	"github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"maps"
	"slices"
)

// ToolHandler executes a tool call.
type ToolHandler = serverproto.ToolHandlerFunc

type registeredTool struct {
	tool    schema.Tool
	handler ToolHandler
}

// registry is built once by New and only read afterwards.
type registry struct {
	*serverproto.Registry
	names []string
}

func (r *registry) list() []schema.Tool {
	ret := make([]schema.Tool, 0, len(r.names))
	for _, name := range r.names {
		if entry, ok := r.ToolRegistry.Get(name); ok {
			ret = append(ret, cloneTool(entry.Metadata))
		}
	}
	return ret
}

func (r *registry) lookup(name string) (ToolHandler, bool) {
	entry, ok := r.ToolRegistry.Get(name)
	if !ok {
		return nil, false
	}
	return entry.Handler, true
}

func cloneTool(tool schema.Tool) schema.Tool {
	ret := tool
	if tool.Description != nil {
		description := *tool.Description
		ret.Description = &description
	}
	ret.InputSchema.Properties = maps.Clone(tool.InputSchema.Properties)
	ret.InputSchema.Required = slices.Clone(tool.InputSchema.Required)
	return ret
}

func newRegistry(entries []registeredTool) (*registry, error) {
	if len(entries) == 0 {
		return nil, errors.New("no tools registered")
	}
	ret := &registry{Registry: serverproto.NewRegistry()}
	for _, entry := range entries {
		name := entry.tool.Name
		if name == "" {
			return nil, errors.New("tool name was empty")
		}
		if entry.handler == nil {
			return nil, fmt.Errorf("tool %v: handler was nil", name)
		}
		if _, ok := ret.ToolRegistry.Get(name); ok {
			return nil, fmt.Errorf("tool %v: already registered", name)
		}
		ret.RegisterTool(&serverproto.ToolEntry{Handler: entry.handler, Metadata: cloneTool(entry.tool)})
		ret.names = append(ret.names, name)
	}
	return ret, nil
}
