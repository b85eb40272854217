package eventbus

// TopicStats is the read-only snapshot of one topic's activity.
type TopicStats struct {
	SubscriptionCount int
	TriggeredCount    uint64
	FailedCount       uint64
	SuccessRate       float64
}

// BusStats is the read-only snapshot returned by Stats.
type BusStats struct {
	IsInitialized         bool
	RegisteredEventsCount int
	TotalSubscriptions    int
	EventsTriggeredCount  uint64
	EventsFailedCount     uint64
	ThreadCount           int
	QueueSize             int
	IdleThreadCount       int
	Topics                map[string]TopicStats
}

// Stats takes a consistent snapshot of bus- and pool-level counters.
func (b *Bus) Stats() BusStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := BusStats{
		IsInitialized:         b.state == StateInitialized,
		RegisteredEventsCount: len(b.registry),
		Topics:                make(map[string]TopicStats, len(b.registry)),
	}

	for name, entry := range b.registry {
		stats.TotalSubscriptions += len(entry.handlers)
		ts := TopicStats{
			SubscriptionCount: len(entry.handlers),
			TriggeredCount:    entry.triggered,
			FailedCount:       entry.failed,
		}
		if total := ts.TriggeredCount + ts.FailedCount; total > 0 {
			ts.SuccessRate = float64(ts.TriggeredCount) / float64(total)
		}
		stats.Topics[name] = ts
	}

	b.statsMu.Lock()
	stats.EventsTriggeredCount = b.triggered
	stats.EventsFailedCount = b.failed
	b.statsMu.Unlock()

	if b.pool != nil {
		stats.ThreadCount = b.pool.Size()
		stats.QueueSize = b.pool.QueueSize()
		stats.IdleThreadCount = stats.ThreadCount - b.pool.BusyCount()
	}
	return stats
}

// ResetStats zeroes every event counter, bus-wide and per-topic. Pool
// counters (thread/queue sizes) are live observations, not reset here.
func (b *Bus) ResetStats() {
	b.mu.Lock()
	for _, entry := range b.registry {
		entry.triggered = 0
		entry.failed = 0
	}
	b.mu.Unlock()

	b.statsMu.Lock()
	b.triggered = 0
	b.failed = 0
	b.statsMu.Unlock()
}
