package subscriber

import (
	"sync"

	"golang-actiontrigger/internal/port"
)

// DefaultQueueSize is the depth of the trigger_input queue.
const DefaultQueueSize = 10

// Queue is the bounded trigger_input message queue. When full, the oldest
// message is dropped to make room for the newest.
type Queue struct {
	mu      sync.Mutex
	ch      chan bool
	dropped uint64
	onDrop  func()
}

// Ensure Queue implements the SignalPublisher port
var _ port.SignalPublisher = (*Queue)(nil)

// NewQueue creates a queue holding up to depth messages. onDrop may be nil.
func NewQueue(depth int, onDrop func()) *Queue {
	if depth < 1 {
		depth = DefaultQueueSize
	}
	return &Queue{ch: make(chan bool, depth), onDrop: onDrop}
}

// Publish enqueues one message without blocking.
func (q *Queue) Publish(value bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		select {
		case q.ch <- value:
			return
		default:
		}

		select {
		case <-q.ch:
			q.dropped++
			if q.onDrop != nil {
				q.onDrop()
			}
		default:
		}
	}
}

// Messages returns the receive side of the queue.
func (q *Queue) Messages() <-chan bool {
	return q.ch
}

// Dropped returns how many messages were discarded because the queue was full.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
