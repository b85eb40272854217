package queue

import "errors"

var (
	// ErrFull is returned by Enqueue when the queue is at capacity.
	ErrFull = errors.New("queue: full")

	// ErrClosed is returned by Enqueue after Shutdown has been called.
	ErrClosed = errors.New("queue: closed")
)

// Signal describes why Dequeue returned without an error.
type Signal int

const (
	// SignalItem means an item was successfully dequeued.
	SignalItem Signal = iota
	// SignalShutdown means the queue was shut down and is empty; the
	// caller should exit.
	SignalShutdown
	// SignalPoke means the caller was woken by Poke with no item
	// available; the caller decides what to do (e.g. consume a shrink
	// credit) and, if nothing applies, should call Dequeue again.
	SignalPoke
)
