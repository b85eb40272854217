package pool

import "time"

// Discipline selects the queueing policy used by a Pool.
type Discipline int

const (
	// FIFO serves work items in strict insertion order.
	FIFO Discipline = iota
	// Priority serves work items ordered by (class, insertion order).
	Priority
)

// ScalingMode selects whether a Pool runs a manager loop.
type ScalingMode int

const (
	// Fixed pins the pool at ThreadMin workers; no manager runs.
	Fixed ScalingMode = iota
	// Dynamic runs a manager goroutine that scales between ThreadMin
	// and ThreadMax.
	Dynamic
)

// Snapshot is a consistent read of pool state taken once per manager
// tick and handed to the scaling function.
type Snapshot struct {
	QueueSize     int
	WorkerCount   int
	BusyCount     int
	ShrinkCredits int
}

// Decision is the outcome of a scaling function for one manager tick.
// At most one of Grow/Shrink should be set; if both are set the pool
// grows, matching the "damp to one action per tick" rule by always
// preferring relief of backlog over reclaiming idle capacity.
type Decision struct {
	Grow   bool
	Shrink bool
}

// ScaleFunc computes a scaling Decision from a Snapshot and the pool's
// static Config. The default implementation is DefaultScale; callers
// may supply their own via Config.Scale.
type ScaleFunc func(Snapshot, Config) Decision

// DefaultScale implements the spec's default scaling rule: grow when
// the backlog exceeds the worker count and headroom remains below
// ThreadMax; shrink by one credit when fewer than half the workers are
// busy and the pool has headroom above ThreadMin not already pledged
// as shrink credits.
func DefaultScale(s Snapshot, cfg Config) Decision {
	var d Decision
	if s.QueueSize > s.WorkerCount && s.WorkerCount < cfg.ThreadMax {
		d.Grow = true
	}
	if s.BusyCount*2 < s.WorkerCount && s.WorkerCount-s.ShrinkCredits > cfg.ThreadMin {
		d.Shrink = true
	}
	return d
}

// Config is the immutable-after-New configuration of a Pool.
type Config struct {
	// ThreadMin is the minimum (and, in Fixed mode, the only) number
	// of workers. Must be >= 1.
	ThreadMin int
	// ThreadMax is the ceiling workers may grow to in Dynamic mode.
	// Ignored (clamped to ThreadMin) in Fixed mode. Must be >= ThreadMin.
	ThreadMax int
	// QueueCapacity bounds the task queue. Must be >= 1.
	QueueCapacity int
	// Discipline selects FIFO or Priority queueing.
	Discipline Discipline
	// ScalingMode selects Fixed or Dynamic sizing.
	ScalingMode ScalingMode
	// ManagerTick is the manager loop's cadence. Defaults to 100ms.
	ManagerTick time.Duration
	// Scale overrides the default scaling rule. Optional.
	Scale ScaleFunc
	// Logger receives diagnostic output (recovered panics, manager
	// failures). Defaults to DefaultLogger().
	Logger Logger
	// PanicHandler, if set, is called with the recovered value any
	// time a work item panics. Optional.
	PanicHandler func(recovered any)
}

func (cfg Config) validate() error {
	if cfg.ThreadMin < 1 {
		return ErrConfigInvalid
	}
	if cfg.ThreadMax < cfg.ThreadMin {
		return ErrConfigInvalid
	}
	if cfg.QueueCapacity < 1 {
		return ErrConfigInvalid
	}
	switch cfg.Discipline {
	case FIFO, Priority:
	default:
		return ErrConfigInvalid
	}
	switch cfg.ScalingMode {
	case Fixed, Dynamic:
	default:
		return ErrConfigInvalid
	}
	return nil
}
