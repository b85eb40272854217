package pool

import "errors"

var (
	// ErrConfigInvalid is returned by New when a Config violates its
	// own invariants (bad bounds or an undefined mode).
	ErrConfigInvalid = errors.New("pool: invalid config")

	// ErrQueueFull is returned by Submit/SubmitWithPriority when the
	// bounded queue is saturated.
	ErrQueueFull = errors.New("pool: queue full")

	// ErrDisciplineMismatch is returned when the priority API is used
	// against a FIFO-discipline pool, or vice versa.
	ErrDisciplineMismatch = errors.New("pool: discipline mismatch")

	// ErrPoolShutdown is returned by Submit/SubmitWithPriority after
	// Shutdown has been called.
	ErrPoolShutdown = errors.New("pool: shutdown")

	// ErrPoolPoisoned is returned by Submit/SubmitWithPriority after
	// the manager loop has failed fatally.
	ErrPoolPoisoned = errors.New("pool: poisoned")
)
