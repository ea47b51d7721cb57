package server

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"time"
)

func TestMessageQueue(t *testing.T) {
	var testCases = []struct {
		description string
		items       []string
		closeErr    error
		expectErr   error
	}{
		{description: "items then eof", items: []string{"a", "b", "c"}, expectErr: io.EOF},
		{description: "items then reader error", items: []string{"a"}, closeErr: errors.New("stream corrupted"), expectErr: errors.New("stream corrupted")},
		{description: "empty stream", expectErr: io.EOF},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			queue := newMessageQueue()
			for _, item := range testCase.items {
				queue.push([]byte(item))
			}
			queue.close(testCase.closeErr)

			var actual []string
			for range testCase.items {
				item, err := queue.next(context.Background())
				require.NoError(t, err)
				actual = append(actual, string(item))
			}
			assert.Equal(t, testCase.items, actual)
			_, err := queue.next(context.Background())
			assert.Equal(t, testCase.expectErr, err)
		})
	}
}

func TestMessageQueue_WaitsForPush(t *testing.T) {
	queue := newMessageQueue()
	done := make(chan []byte, 1)
	go func() {
		item, _ := queue.next(context.Background())
		done <- item
	}()
	queue.push([]byte("ping"))
	select {
	case item := <-done:
		assert.Equal(t, "ping", string(item))
	case <-time.After(5 * time.Second):
		t.Fatal("next did not return pushed item")
	}
}

func TestMessageQueue_ContextCancelled(t *testing.T) {
	queue := newMessageQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := queue.next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
