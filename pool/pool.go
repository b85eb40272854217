package pool

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hollowflare/eventbus/queue"
)

// workQueue is the subset of queue.FIFO/queue.Priority the pool needs
// to drive workers, independent of discipline.
type workQueue interface {
	Dequeue(extraWake func() bool) (any, queue.Signal)
	Poke()
	Shutdown()
	Size() int
	Capacity() int
}

// Pool is a set of worker goroutines draining a bounded task queue,
// optionally resized by a manager goroutine. See package doc for the
// scaling contract.
type Pool struct {
	cfg Config

	fifo workQueue
	prio *queue.Priority

	eg     *errgroup.Group
	stopCh chan struct{}

	mu            sync.Mutex
	workerCount   int
	busyCount     int
	shrinkCredits int
	shuttingDown  bool
	poisoned      bool
}

// New starts exactly cfg.ThreadMin workers and, in Dynamic mode, the
// manager goroutine. It fails with ErrConfigInvalid if cfg violates its
// own invariants.
func New(cfg Config) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.ScalingMode == Fixed {
		cfg.ThreadMax = cfg.ThreadMin
	}
	if cfg.ManagerTick <= 0 {
		cfg.ManagerTick = 100 * time.Millisecond
	}
	if cfg.Scale == nil {
		cfg.Scale = DefaultScale
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger()
	}

	p := &Pool{cfg: cfg}

	switch cfg.Discipline {
	case Priority:
		prio := queue.NewPriority(cfg.QueueCapacity)
		p.prio = prio
		p.fifo = prio
	default:
		p.fifo = queue.NewFIFO(cfg.QueueCapacity)
	}

	p.eg = &errgroup.Group{}
	p.workerCount = cfg.ThreadMin
	for i := 0; i < cfg.ThreadMin; i++ {
		p.eg.Go(p.workerLoop)
	}
	if cfg.ScalingMode == Dynamic {
		p.stopCh = make(chan struct{})
		p.eg.Go(p.managerLoop)
	}
	return p, nil
}

// Submit enqueues work on the FIFO queue. It fails with
// ErrDisciplineMismatch on a Priority-discipline pool.
func (p *Pool) Submit(work func()) error {
	if err := p.preflight(); err != nil {
		return err
	}
	if p.cfg.Discipline != FIFO {
		return ErrDisciplineMismatch
	}
	return p.enqueue(p.fifo.(*queue.FIFO).Enqueue(work))
}

// SubmitWithPriority enqueues work under the given priority class. It
// fails with ErrDisciplineMismatch on a FIFO-discipline pool.
func (p *Pool) SubmitWithPriority(class queue.Class, work func()) error {
	if err := p.preflight(); err != nil {
		return err
	}
	if p.cfg.Discipline != Priority {
		return ErrDisciplineMismatch
	}
	return p.enqueue(p.prio.EnqueuePriority(work, class))
}

func (p *Pool) preflight() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.poisoned {
		return ErrPoolPoisoned
	}
	if p.shuttingDown {
		return ErrPoolShutdown
	}
	return nil
}

func (p *Pool) enqueue(err error) error {
	switch err {
	case nil:
		return nil
	case queue.ErrFull:
		return ErrQueueFull
	case queue.ErrClosed:
		return ErrPoolShutdown
	default:
		return err
	}
}

// Size returns the current number of live workers.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workerCount
}

// QueueSize returns the current task queue backlog.
func (p *Pool) QueueSize() int {
	return p.fifo.Size()
}

// BusyCount returns the number of workers currently executing a work
// item.
func (p *Pool) BusyCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busyCount
}

// Shutdown sets the shutdown flag, wakes every worker, and joins the
// workers and manager. Idempotent: the second and later calls are
// no-ops that return nil.
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	if p.shuttingDown {
		p.mu.Unlock()
		return nil
	}
	p.shuttingDown = true
	p.mu.Unlock()

	if p.stopCh != nil {
		close(p.stopCh)
	}
	p.fifo.Shutdown()
	return p.eg.Wait()
}

// snapshot reads the queue size before taking p.mu, never after: the
// queue's Dequeue loop evaluates extraWake (hasShrinkCredit, which
// takes p.mu) while holding its own mutex, so taking p.mu first here
// would invert that lock order and deadlock against an idle worker.
func (p *Pool) snapshot() Snapshot {
	qsize := p.fifo.Size()

	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		QueueSize:     qsize,
		WorkerCount:   p.workerCount,
		BusyCount:     p.busyCount,
		ShrinkCredits: p.shrinkCredits,
	}
}

func (p *Pool) markBusy() {
	p.mu.Lock()
	p.busyCount++
	p.mu.Unlock()
}

func (p *Pool) markIdle() {
	p.mu.Lock()
	p.busyCount--
	p.mu.Unlock()
}

func (p *Pool) hasShrinkCredit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shrinkCredits > 0
}

// tryConsumeShrinkCredit atomically claims one shrink credit, if any
// remain, and accounts for the worker's exit.
func (p *Pool) tryConsumeShrinkCredit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shrinkCredits > 0 {
		p.shrinkCredits--
		p.workerCount--
		return true
	}
	return false
}

func (p *Pool) markPoisoned() {
	p.mu.Lock()
	p.poisoned = true
	p.mu.Unlock()
}
