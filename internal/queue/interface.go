package queue

import "context"

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks tour-catalog/internal/queue Queue

// Queue defines the interface for media cleanup job queue operations.
type Queue interface {
	// Enqueue adds a job to the queue.
	Enqueue(job CleanupJob) error
	// Dequeue removes and returns the next job from the queue.
	Dequeue(ctx context.Context) (CleanupJob, error)
	// Close closes the queue.
	Close()
	// Len returns the current number of jobs in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

// Ensure MemoryQueue implements Queue interface
var _ Queue = (*MemoryQueue)(nil)
