package eventbus

import (
	"strings"
	"time"

	"github.com/hollowflare/eventbus/pool"
)

// BusConfig is the recognized configuration surface of a Bus, loadable
// from struct-tag defaults and environment variables via package
// config. Field names mirror the configuration enumeration:
// thread_model, task_model, thread_min, thread_max, task_max.
type BusConfig struct {
	// ThreadModel is "FIXED" (pool size pinned to ThreadMin) or
	// "DYNAMIC" (manager scales between ThreadMin and ThreadMax).
	ThreadModel string `config:"thread_model" env:"THREAD_MODEL" default:"DYNAMIC"`
	// TaskModel is "NORMAL" (FIFO queue, priority publish rejected) or
	// "PRIORITY" (priority queue, plain publish rejected).
	TaskModel string `config:"task_model" env:"TASK_MODEL" default:"NORMAL"`
	// ThreadMin is the minimum worker count. Must be >= 1.
	ThreadMin int `config:"thread_min" env:"THREAD_MIN" default:"4"`
	// ThreadMax is the worker ceiling in DYNAMIC mode. Must be >= ThreadMin.
	ThreadMax int `config:"thread_max" env:"THREAD_MAX" default:"16"`
	// TaskMax is the task queue capacity. Must be >= 1.
	TaskMax int `config:"task_max" env:"TASK_MAX" default:"1024"`
	// ManagerTick is the manager loop cadence in DYNAMIC mode.
	ManagerTick time.Duration `config:"manager_tick" env:"MANAGER_TICK" default:"100ms" optional:"true"`

	// Logger receives diagnostic output. Defaults to pool.DefaultLogger().
	Logger pool.Logger `config:"-"`
	// PanicHandler, if set, is called with the topic name and the
	// recovered value any time a handler panics.
	PanicHandler func(topic string, recovered any) `config:"-"`
}

// DefaultBusConfig returns the defaults described by the
// struct tags above, useful as a starting point before overriding
// individual fields.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		ThreadModel: "DYNAMIC",
		TaskModel:   "NORMAL",
		ThreadMin:   4,
		ThreadMax:   16,
		TaskMax:     1024,
		ManagerTick: 100 * time.Millisecond,
	}
}

func (c BusConfig) toPoolConfig() (pool.Config, error) {
	pc := pool.Config{
		ThreadMin:     c.ThreadMin,
		ThreadMax:     c.ThreadMax,
		QueueCapacity: c.TaskMax,
		ManagerTick:   c.ManagerTick,
		Logger:        c.Logger,
	}

	switch strings.ToUpper(c.ThreadModel) {
	case "FIXED":
		pc.ScalingMode = pool.Fixed
	case "DYNAMIC":
		pc.ScalingMode = pool.Dynamic
	default:
		return pool.Config{}, ErrConfigInvalid
	}

	switch strings.ToUpper(c.TaskModel) {
	case "NORMAL":
		pc.Discipline = pool.FIFO
	case "PRIORITY":
		pc.Discipline = pool.Priority
	default:
		return pool.Config{}, ErrConfigInvalid
	}

	return pc, nil
}
