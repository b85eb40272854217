package eventbus

import (
	"sync"
	"sync/atomic"

	"github.com/hollowflare/eventbus/eventbus/internal/invoke"
	"github.com/hollowflare/eventbus/pool"
)

// State is the bus's lifecycle state.
type State int

const (
	// StateUninitialized is the state right after New, before Init.
	StateUninitialized State = iota
	// StateInitialized is the state after a successful Init.
	StateInitialized
	// StateShuttingDown is the state between Shutdown being called and
	// the pool finishing its join.
	StateShuttingDown
	// StateTerminated is the terminal state once Shutdown returns.
	StateTerminated
)

// handlerRecord is one subscription: an id plus its erased invoker.
// Immutable after registration.
type handlerRecord struct {
	id      uint64
	invoker invoke.Invoker
}

// topicEntry is the ordered list of handlers subscribed to one topic,
// plus its own trigger/failure counters.
type topicEntry struct {
	name      string
	handlers  []*handlerRecord
	triggered uint64
	failed    uint64
}

// Bus is an in-process typed publish/subscribe event bus. The zero
// value is not usable; construct with New and bring it up with Init.
type Bus struct {
	mu       sync.RWMutex
	state    State
	registry map[string]*topicEntry
	pool     *pool.Pool
	disc     pool.Discipline

	nextID atomic.Uint64

	logger       pool.Logger
	panicHandler func(topic string, recovered any)

	statsMu   sync.Mutex
	triggered uint64
	failed    uint64
}

// New constructs an uninitialized Bus. Call Init before any other
// operation.
func New() *Bus {
	return &Bus{registry: make(map[string]*topicEntry)}
}

// Init brings the bus up from StateUninitialized to StateInitialized.
// It is one-shot: a second call fails with ErrNotInitialized, matching
// the spec's explicit reject-on-re-init policy.
func (b *Bus) Init(cfg BusConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateUninitialized {
		return ErrNotInitialized
	}

	poolCfg, err := cfg.toPoolConfig()
	if err != nil {
		return err
	}
	if poolCfg.Logger == nil {
		poolCfg.Logger = pool.DefaultLogger()
	}
	p, err := pool.New(poolCfg)
	if err != nil {
		return mapPoolErr(err)
	}

	b.pool = p
	b.disc = poolCfg.Discipline
	b.logger = poolCfg.Logger
	b.panicHandler = cfg.PanicHandler
	b.state = StateInitialized
	return nil
}

// IsInitialized reports whether the bus has completed Init and has not
// begun shutting down.
func (b *Bus) IsInitialized() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state == StateInitialized
}

func (b *Bus) requireInitialized() error {
	if b.state == StateUninitialized {
		return ErrNotInitialized
	}
	if b.state == StateShuttingDown || b.state == StateTerminated {
		return ErrPoolShutdown
	}
	return nil
}

// RegisterTopic allocates an empty topic entry for name if one doesn't
// already exist. Idempotent: calling it N times on the same name leaves
// exactly one entry with its handler list preserved.
func (b *Bus) RegisterTopic(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.requireInitialized(); err != nil {
		return err
	}
	if _, ok := b.registry[name]; ok {
		return nil
	}
	b.registry[name] = &topicEntry{name: name, handlers: make([]*handlerRecord, 0, 3)}
	return nil
}

// IsRegistered reports whether name has a topic entry.
func (b *Bus) IsRegistered(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.registry[name]
	return ok
}

// Unsubscribe removes the handler with the given id from topic name.
// It returns true iff a record was removed. Unknown id or topic both
// return false, never an error. Called during ShuttingDown, it is
// silently dropped and returns false, per the spec's documented choice
// for unsubscribe after teardown begins.
func (b *Bus) Unsubscribe(name string, id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateInitialized {
		return false
	}
	entry, ok := b.registry[name]
	if !ok {
		return false
	}
	for i, rec := range entry.handlers {
		if rec.id == id {
			entry.handlers = append(entry.handlers[:i], entry.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Shutdown transitions the bus through ShuttingDown to Terminated,
// joining the underlying pool's workers and manager. Idempotent.
func (b *Bus) Shutdown() error {
	b.mu.Lock()
	if b.state == StateTerminated || b.state == StateShuttingDown {
		b.mu.Unlock()
		return nil
	}
	if b.state == StateUninitialized {
		b.mu.Unlock()
		return ErrNotInitialized
	}
	b.state = StateShuttingDown
	p := b.pool
	b.mu.Unlock()

	err := p.Shutdown()

	b.mu.Lock()
	b.state = StateTerminated
	b.mu.Unlock()

	return err
}

func (b *Bus) reportFailure(entry *topicEntry) {
	b.statsMu.Lock()
	b.failed++
	b.statsMu.Unlock()

	b.mu.Lock()
	entry.failed++
	b.mu.Unlock()
}

func (b *Bus) reportSuccess(entry *topicEntry) {
	b.statsMu.Lock()
	b.triggered++
	b.statsMu.Unlock()

	b.mu.Lock()
	entry.triggered++
	b.mu.Unlock()
}
