package server

import (
	"context"
	"io"
	"sync"
)

// messageQueue buffers inbound lines between the stream reader and the
// session loop. It never blocks the reader.
type messageQueue struct {
	mux   sync.Mutex
	items [][]byte
	err   error
	done  bool
	ready chan struct{}
}

func (q *messageQueue) push(item []byte) {
	q.mux.Lock()
	q.items = append(q.items, item)
	q.mux.Unlock()
	q.signal()
}

// close records the reader outcome; queued items are still delivered first.
func (q *messageQueue) close(err error) {
	q.mux.Lock()
	q.done = true
	q.err = err
	q.mux.Unlock()
	q.signal()
}

func (q *messageQueue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// next returns the oldest item. Once the reader finished and the queue is
// drained it returns the reader error, io.EOF for a clean end.
func (q *messageQueue) next(ctx context.Context) ([]byte, error) {
	for {
		q.mux.Lock()
		if len(q.items) > 0 {
			item := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			q.mux.Unlock()
			return item, nil
		}
		if q.done {
			err := q.err
			q.mux.Unlock()
			if err == nil {
				err = io.EOF
			}
			return nil, err
		}
		q.mux.Unlock()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.ready:
		}
	}
}

func newMessageQueue() *messageQueue {
	return &messageQueue{ready: make(chan struct{}, 1)}
}
