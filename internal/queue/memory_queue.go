// Package queue runs best-effort media cleanup in the background.
package queue

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CleanupJob describes media that is no longer referenced by any record.
type CleanupJob struct {
	SubPackageID primitive.ObjectID
	ImageID      primitive.ObjectID
	// PublicID identifies the object in the media store. Empty for legacy images.
	PublicID string
	// URL is the stored image location; local paths are removed from disk.
	URL string
}

// MemoryQueue is an in-memory queue of cleanup jobs.
type MemoryQueue struct {
	jobs     chan CleanupJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan CleanupJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job without blocking. Returns ErrQueueFull or ErrQueueClosed.
// The read lock is held for the whole send so Close cannot close the channel mid-send.
func (q *MemoryQueue) Enqueue(job CleanupJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job, blocking until one is available.
func (q *MemoryQueue) Dequeue(ctx context.Context) (CleanupJob, error) {
	select {
	case <-ctx.Done():
		return CleanupJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return CleanupJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close stops accepting jobs. Jobs already queued can still be drained.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Reset discards queued jobs and reopens the queue. Used by tests.
func (q *MemoryQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = false
	q.jobs = make(chan CleanupJob, q.capacity)
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
