package server

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/chucknorris-mcp/internal/conv"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcp-protocol/syncmap"
)

// Handler serves the JSON-RPC requests of one session
type Handler struct {
	transport.Notifier
	server           *Server
	logger           *Logger
	sessionID        string
	clientInitialize *schema.InitializeRequestParams
	loggingLevel     schema.LoggingLevel
	activeContexts   *syncmap.Map[string, *activeContext]
	Initialized      bool
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(parent context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	// Check for valid JSONRPC version
	if jsonrpc.Version != request.Jsonrpc {
		response.Jsonrpc = jsonrpc.Version
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}

	key := conv.AsKey(request.Id)
	ctx, cancel := context.WithCancel(withLogger(parent, h.logger))
	h.activeContexts.Put(key, &activeContext{Context: ctx, CancelFunc: cancel})
	defer h.cancelOperation(key)

	h.server.logger.DebugContext(ctx, "handling request", "session", h.sessionID, "method", request.Method, "id", key)
	switch request.Method {
	case schema.MethodInitialize:
		result, err := h.Initialize(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		result, err := h.Ping(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsList:
		result, err := h.ListTools(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsCall:
		result, err := h.CallTool(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodLoggingSetLevel:
		result, err := h.SetLevel(ctx, request)
		h.setResponse(response, result, err)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), []byte{})
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationCanceled, schema.MethodNotificationCancel:
		if err := h.Cancel(ctx, notification); err != nil {
			h.server.logger.WarnContext(ctx, "invalid cancel notification", "session", h.sessionID, "error", err)
		}
	case schema.MethodNotificationInitialized:
		h.Initialized = true
		h.server.logger.InfoContext(ctx, "client initialized", "session", h.sessionID)
	default:
		h.server.logger.DebugContext(ctx, "ignoring notification", "session", h.sessionID, "method", notification.Method)
	}
}

// unmarshalParams decodes request params; absent params leave target untouched.
func unmarshalParams(request *jsonrpc.Request, target interface{}) *jsonrpc.Error {
	if len(request.Params) == 0 || string(request.Params) == "null" {
		return nil
	}
	if err := json.Unmarshal(request.Params, target); err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	return nil
}
