package server

import "context"

type activeContext struct {
	context.Context
	context.CancelFunc
}

func (h *Handler) cancelOperation(key string) {
	if active, ok := h.activeContexts.Get(key); ok {
		active.CancelFunc()
		h.activeContexts.Delete(key)
	}
}
