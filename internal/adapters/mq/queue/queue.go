// Package queue defines the contract for enqueuing and consuming fixtures.
//
// Implementations may use channels or more advanced structures. The default
// is an in-memory bounded queue.
package queue

import (
	"context"
	"sync"

	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultQueueCapacity = 10000
	defaultBufferSize    = 10000
)

// Fixture represents the payload type flowing through the queue.
// Using the model.Fixture type for type safety.
type Fixture = model.Fixture

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a fixture to the queue.
	// Returns false if the queue is full and the fixture was not enqueued.
	Enqueue(ctx context.Context, f Fixture) bool

	// Dequeue returns a channel that will receive fixtures as they become
	// available. The channel is closed when the queue is closed.
	Dequeue(ctx context.Context) <-chan Fixture

	// Len returns the current number of queued fixtures.
	Len(ctx context.Context) int

	// Close gracefully shuts down the queue.
	// After closing, no new fixtures can be enqueued and the dequeue channel
	// will be closed.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	fixtures   chan Fixture
	capacity   int
	bufferSize int
	mu         sync.RWMutex
	closed     bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity:   defaultQueueCapacity,
		bufferSize: defaultBufferSize,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.fixtures = make(chan Fixture, q.bufferSize)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0.0)

	return q
}

// Enqueue adds a fixture to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, f Fixture) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}

	if len(q.fixtures) >= q.capacity {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "capacity_exceeded")
		return false
	}

	select {
	case q.fixtures <- f:
		metrics.RecordQueueEnqueue()
		q.observeSize()
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue returns a channel that will receive fixtures as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Fixture {
	// Wrap the channel to track dequeue metrics.
	out := make(chan Fixture)
	go func() {
		defer close(out)
		for f := range q.fixtures {
			select {
			case out <- f:
				metrics.RecordQueueDequeue()
				q.observeSize()
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued fixtures.
func (q *InMemoryQueue) Len(_ context.Context) int {
	q.observeSize()
	return len(q.fixtures)
}

// Close gracefully shuts down the queue.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	close(q.fixtures)
	q.closed = true

	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

func (q *InMemoryQueue) observeSize() {
	size := len(q.fixtures)
	metrics.UpdateQueueSize(size)
	metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
}
