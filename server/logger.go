package server

import (
	"context"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"log/slog"
)

// Logger sends log messages to the client as notifications/message once the
// client has chosen a level with logging/setLevel.
type Logger struct {
	name     string
	level    *schema.LoggingLevel
	notifier transport.Notifier
}

// Enabled reports whether messages at level reach the client.
func (l *Logger) Enabled(level schema.LoggingLevel) bool {
	if l == nil || l.level == nil || *l.level == "" {
		return false
	}
	return l.level.Ordinal() <= level.Ordinal()
}

// Log notifies the client, skipping messages below the client level.
func (l *Logger) Log(ctx context.Context, level schema.LoggingLevel, data any) error {
	if !l.Enabled(level) {
		return nil
	}
	notification, err := jsonrpc.NewNotification(schema.MethodNotificationMessage, &schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	})
	if err != nil {
		return err
	}
	return l.notifier.Notify(ctx, notification)
}

func NewLogger(name string, level *schema.LoggingLevel, notifier transport.Notifier) *Logger {
	return &Logger{
		name:     name,
		level:    level,
		notifier: notifier,
	}
}

type loggerKey struct{}

func withLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func loggerFromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return nil
	}
	logger, _ := ctx.Value(loggerKey{}).(*Logger)
	return logger
}

// logHandler is a slog.Handler that also forwards records logged with a
// request context to the client of that request.
type logHandler struct {
	slog.Handler
	attrs []slog.Attr
	group string
}

// NewLogHandler wraps base so records logged with a request context also reach the client.
func NewLogHandler(base slog.Handler) slog.Handler {
	return &logHandler{Handler: base}
}

func (h *logHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.Handler.Enabled(ctx, level) {
		return true
	}
	return loggerFromContext(ctx).Enabled(loggingLevel(level))
}

func (h *logHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	if h.Handler.Enabled(ctx, record.Level) {
		err = h.Handler.Handle(ctx, record)
	}
	logger := loggerFromContext(ctx)
	level := loggingLevel(record.Level)
	if !logger.Enabled(level) {
		return err
	}
	data := map[string]interface{}{"message": record.Message}
	for _, attr := range h.attrs {
		data[attr.Key] = attrValue(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		data[h.qualify(attr.Key)] = attrValue(attr)
		return true
	})
	if notifyErr := logger.Log(ctx, level, data); err == nil {
		err = notifyErr
	}
	return err
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ret := &logHandler{Handler: h.Handler.WithAttrs(attrs), group: h.group}
	ret.attrs = append(ret.attrs, h.attrs...)
	for _, attr := range attrs {
		attr.Key = h.qualify(attr.Key)
		ret.attrs = append(ret.attrs, attr)
	}
	return ret
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &logHandler{Handler: h.Handler.WithGroup(name), attrs: h.attrs, group: h.qualify(name)}
}

func (h *logHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func loggingLevel(level slog.Level) schema.LoggingLevel {
	switch {
	case level < slog.LevelInfo:
		return schema.LoggingLevelDebug
	case level < slog.LevelWarn:
		return schema.LoggingLevelInfo
	case level < slog.LevelError:
		return schema.LoggingLevelWarning
	case level == slog.LevelError:
		return schema.LoggingLevelError
	}
	return schema.LoggingLevelCritical
}

func attrValue(attr slog.Attr) interface{} {
	value := attr.Value.Resolve().Any()
	if err, ok := value.(error); ok {
		return err.Error()
	}
	return value
}
