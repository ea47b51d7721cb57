package server

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-protocol/schema"
	"log/slog"
	"testing"
)

func TestLogger_Enabled(t *testing.T) {
	var testCases = []struct {
		description string
		clientLevel schema.LoggingLevel
		level       schema.LoggingLevel
		expect      bool
	}{
		{description: "level not set", clientLevel: "", level: schema.LoggingLevelEmergency, expect: false},
		{description: "below client level", clientLevel: schema.LoggingLevelWarning, level: schema.LoggingLevelInfo, expect: false},
		{description: "at client level", clientLevel: schema.LoggingLevelWarning, level: schema.LoggingLevelWarning, expect: true},
		{description: "above client level", clientLevel: schema.LoggingLevelDebug, level: schema.LoggingLevelError, expect: true},
	}
	for _, testCase := range testCases {
		level := testCase.clientLevel
		logger := NewLogger("test", &level, &recordingTransport{})
		assert.Equal(t, testCase.expect, logger.Enabled(testCase.level), testCase.description)
	}
	var nilLogger *Logger
	assert.False(t, nilLogger.Enabled(schema.LoggingLevelError))
}

func TestLogger_Log(t *testing.T) {
	level := schema.LoggingLevelInfo
	notifier := &recordingTransport{}
	logger := NewLogger("chuck-norris-server", &level, notifier)

	require.NoError(t, logger.Log(context.Background(), schema.LoggingLevelDebug, "skipped"))
	require.NoError(t, logger.Log(context.Background(), schema.LoggingLevelInfo, "info"))
	require.NoError(t, logger.Log(context.Background(), schema.LoggingLevelError, map[string]string{"k": "v"}))
	require.Len(t, notifier.notifications, 2)

	notification := notifier.notifications[1]
	assert.Equal(t, "2.0", notification.Jsonrpc)
	assert.Equal(t, schema.MethodNotificationMessage, notification.Method)
	var params schema.LoggingMessageNotificationParams
	require.NoError(t, json.Unmarshal(notification.Params, &params))
	assert.Equal(t, schema.LoggingLevelError, params.Level)
	require.NotNil(t, params.Logger)
	assert.Equal(t, "chuck-norris-server", *params.Logger)
	assert.Equal(t, map[string]interface{}{"k": "v"}, params.Data)
}

func TestLogHandler_AttrsAndGroups(t *testing.T) {
	level := schema.LoggingLevelDebug
	notifier := &recordingTransport{}
	ctx := withLogger(context.Background(), NewLogger("test", &level, notifier))

	stream := &bytes.Buffer{}
	logger := slog.New(NewLogHandler(slog.NewTextHandler(stream, nil))).With("component", "chucknorris").WithGroup("http")
	logger.InfoContext(ctx, "response", "status", 200)
	logger.Info("no request context")

	require.Len(t, notifier.notifications, 1)
	var params schema.LoggingMessageNotificationParams
	require.NoError(t, json.Unmarshal(notifier.notifications[0].Params, &params))
	assert.Equal(t, schema.LoggingLevelInfo, params.Level)
	assert.Equal(t, map[string]interface{}{
		"message":     "response",
		"component":   "chucknorris",
		"http.status": float64(200),
	}, params.Data)
	assert.Contains(t, stream.String(), "http.status=200")
	assert.Contains(t, stream.String(), "no request context")
}

func TestLoggingLevel(t *testing.T) {
	assert.Equal(t, schema.LoggingLevelDebug, loggingLevel(slog.LevelDebug))
	assert.Equal(t, schema.LoggingLevelInfo, loggingLevel(slog.LevelInfo))
	assert.Equal(t, schema.LoggingLevelWarning, loggingLevel(slog.LevelWarn))
	assert.Equal(t, schema.LoggingLevelError, loggingLevel(slog.LevelError))
	assert.Equal(t, schema.LoggingLevelCritical, loggingLevel(slog.LevelError+4))
}
