package server

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/chucknorris-mcp/internal/conv"
	"github.com/viant/jsonrpc"
)

// cancelledParams decodes notifications/cancelled; schema.CancelledNotificationParams only carries integer ids.
type cancelledParams struct {
	RequestId interface{} `json:"requestId"`
	Reason    *string     `json:"reason,omitempty"`
}

// Cancel aborts the in-flight request named by a notifications/cancelled message.
func (h *Handler) Cancel(ctx context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	var params cancelledParams
	if err := json.Unmarshal(notification.Params, &params); err != nil {
		return jsonrpc.NewParsingError(fmt.Sprintf("failed to parse notification: %v", err), notification.Params)
	}
	if params.RequestId == nil {
		return jsonrpc.NewInvalidParamsError("invalid requestId", notification.Params)
	}
	key := conv.AsKey(params.RequestId)
	reason := ""
	if params.Reason != nil {
		reason = *params.Reason
	}
	h.server.logger.InfoContext(ctx, "request cancelled by client", "session", h.sessionID, "id", key, "reason", reason)
	h.cancelOperation(key)
	return nil
}
