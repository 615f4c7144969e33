package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue has no free capacity.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic queue.
type Queue interface {
	// Enqueue adds an item without blocking, returning ErrQueueFull when there is no room.
	Enqueue(item interface{}) error
	// ReadAllMessages drains every pending item.
	ReadAllMessages() ([]interface{}, error)
	Size() int
	ClearQueue()
}
