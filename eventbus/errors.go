package eventbus

import (
	"errors"

	"github.com/hollowflare/eventbus/pool"
)

var (
	// ErrNotInitialized is returned by any operation attempted before
	// Init succeeds, and by a second call to Init on an
	// already-initialized bus.
	ErrNotInitialized = errors.New("eventbus: not initialized")

	// ErrConfigInvalid is returned by Init when BusConfig violates its
	// own invariants.
	ErrConfigInvalid = errors.New("eventbus: invalid config")

	// ErrTopicUnknown is returned by Subscribe/Publish against a topic
	// that was never registered.
	ErrTopicUnknown = errors.New("eventbus: unknown topic")

	// ErrDisciplineMismatch is returned when the priority API is used
	// against a NORMAL-discipline bus, or vice versa. Re-exported from
	// package pool so callers never need to import it directly.
	ErrDisciplineMismatch = pool.ErrDisciplineMismatch

	// ErrQueueFull is returned when the bounded task queue is
	// saturated at publish time. Re-exported from package pool.
	ErrQueueFull = pool.ErrQueueFull

	// ErrPoolShutdown is returned by any operation after the bus has
	// begun shutting down. Re-exported from package pool.
	ErrPoolShutdown = pool.ErrPoolShutdown

	// ErrPoolPoisoned is returned after the pool's manager loop has
	// failed fatally. Re-exported from package pool.
	ErrPoolPoisoned = pool.ErrPoolPoisoned
)

func mapPoolErr(err error) error {
	switch {
	case errors.Is(err, pool.ErrConfigInvalid):
		return ErrConfigInvalid
	default:
		return err
	}
}
