package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	transportbase "github.com/viant/jsonrpc/transport/base"
	"github.com/viant/jsonrpc/transport/server/base"
	"github.com/viant/mcp-protocol/schema"
	"io"
	"log/slog"
)

// inboundNotification keeps params, which jsonrpc.Notification does not decode.
type inboundNotification struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// session is one newline-delimited JSON-RPC stream. Requests are processed one
// at a time and answered in arrival order.
type session struct {
	endpoint *base.Handler
	session  *base.Session
	handler  transport.Handler
	reader   io.Reader
	queue    *messageQueue
	logger   *slog.Logger
}

func (s *session) run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("session crashed", "panic", r)
			panic(r)
		}
	}()
	s.logger.Info("session started")
	defer s.logger.Info("session closed")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.read(ctx)

	for {
		line, err := s.queue.next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				s.logger.Info("session interrupted", "reason", context.Cause(ctx))
				return nil
			}
			return fmt.Errorf("read stream: %w", err)
		}
		if err := s.process(ctx, line); err != nil {
			return err
		}
	}
}

// read splits the stream into lines and queues them without waiting for the
// request in flight. Cancellation notifications are applied immediately.
func (s *session) read(ctx context.Context) {
	reader := bufio.NewReader(s.reader)
	for {
		line, err := reader.ReadBytes('\n')
		if line = bytes.TrimSpace(line); len(line) > 0 && !s.cancelNow(ctx, line) {
			s.queue.push(line)
		}
		if err != nil {
			s.queue.close(err)
			return
		}
	}
}

func (s *session) cancelNow(ctx context.Context, line []byte) bool {
	if transportbase.MessageType(line) != jsonrpc.MessageTypeNotification {
		return false
	}
	notification, ok := decodeNotification(line)
	if !ok || (notification.Method != schema.MethodNotificationCanceled && notification.Method != schema.MethodNotificationCancel) {
		return false
	}
	s.handler.OnNotification(ctx, notification)
	return true
}

func (s *session) process(ctx context.Context, line []byte) error {
	switch {
	case !json.Valid(line):
		s.logger.Warn("failed to parse message", "size", len(line))
		s.session.SendResponse(ctx, &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Error: jsonrpc.NewParsingError("parse error", nil)})
	case transportbase.MessageType(line) == jsonrpc.MessageTypeNotification:
		if notification, ok := decodeNotification(line); ok && notification.Method != "" {
			s.handler.OnNotification(ctx, notification)
		}
	default:
		if err := json.Unmarshal(line, &jsonrpc.Request{}); err != nil {
			s.logger.Warn("invalid request", "error", err)
			s.session.SendResponse(ctx, &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: requestID(line), Error: jsonrpc.NewInvalidRequest(err.Error(), nil)})
			break
		}
		s.endpoint.HandleMessage(ctx, s.session, line, nil)
	}
	if err := s.session.Error(); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func decodeNotification(line []byte) (*jsonrpc.Notification, bool) {
	message := &inboundNotification{}
	if err := json.Unmarshal(line, message); err != nil {
		return nil, false
	}
	return &jsonrpc.Notification{Jsonrpc: jsonrpc.Version, Method: message.Method, Params: message.Params}, true
}

func requestID(line []byte) jsonrpc.RequestId {
	message := &struct {
		Id jsonrpc.RequestId `json:"id"`
	}{}
	_ = json.Unmarshal(line, message)
	return message.Id
}

func frameLine(data []byte) []byte {
	if bytes.HasSuffix(data, []byte{'\n'}) {
		return data
	}
	return append(data, '\n')
}

// endpointLogger routes jsonrpc endpoint errors to slog.
type endpointLogger struct {
	logger *slog.Logger
}

func (l *endpointLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func newSession(ctx context.Context, server *Server, reader io.Reader, writer io.Writer) *session {
	id := uuid.NewString()
	ret := &session{
		endpoint: base.NewHandler(),
		reader:   reader,
		queue:    newMessageQueue(),
		logger:   server.logger.With("session", id),
	}
	ret.endpoint.Logger = &endpointLogger{logger: ret.logger}
	ret.session = base.NewSession(ctx, id, writer, func(ctx context.Context, transport transport.Transport) transport.Handler {
		ret.handler = server.newHandler(ctx, transport, id)
		return ret.handler
	}, base.WithFramer(frameLine))
	ret.endpoint.Sessions.Put(id, ret.session)
	return ret
}
