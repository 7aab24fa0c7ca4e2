package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the buffer has no room left.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic FIFO queue that is safe for concurrent use.
type Queue[T any] interface {
	// Enqueue adds an item without blocking.
	Enqueue(item T) error
	Size() int
	// ReadAllMessages drains every pending item in FIFO order.
	ReadAllMessages() []T
	ClearQueue()
}
