package eventbus

import (
	"github.com/hollowflare/eventbus/pool"
	"github.com/hollowflare/eventbus/queue"
)

// publish is the shared implementation behind every PublishN /
// PublishWithPriorityN function. args is built once by the caller and
// shared, read-only, across every fan-out work item. priority is nil
// for a plain publish; non-nil selects a priority class and requires a
// PRIORITY-discipline bus.
func (b *Bus) publish(topic string, priority *queue.Class, args []any) error {
	b.mu.RLock()
	if err := b.requireInitialized(); err != nil {
		b.mu.RUnlock()
		return err
	}
	if priority == nil && b.disc != pool.FIFO {
		b.mu.RUnlock()
		return ErrDisciplineMismatch
	}
	if priority != nil && b.disc != pool.Priority {
		b.mu.RUnlock()
		return ErrDisciplineMismatch
	}
	entry, ok := b.registry[topic]
	if !ok {
		b.mu.RUnlock()
		return ErrTopicUnknown
	}
	handlers := make([]*handlerRecord, len(entry.handlers))
	copy(handlers, entry.handlers)
	p := b.pool
	b.mu.RUnlock()

	for _, rec := range handlers {
		work := b.makeWorkItem(topic, entry, rec, args)

		var err error
		if priority != nil {
			err = p.SubmitWithPriority(*priority, work)
		} else {
			err = p.Submit(work)
		}
		if err != nil {
			return mapPoolErr(err)
		}
	}
	return nil
}

// makeWorkItem packages one subscriber's invoker plus the shared
// argument tuple into a self-contained, zero-argument closure and
// wraps it with panic isolation and stats reporting.
func (b *Bus) makeWorkItem(topic string, entry *topicEntry, rec *handlerRecord, args []any) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				b.logger.Printf("eventbus: handler panic on topic %q: %v", topic, r)
				if b.panicHandler != nil {
					b.panicHandler(topic, r)
				}
				b.reportFailure(entry)
			}
		}()

		if err := rec.invoker.Invoke(args); err != nil {
			b.logger.Printf("eventbus: dispatch failed on topic %q: %v", topic, err)
			b.reportFailure(entry)
			return
		}
		b.reportSuccess(entry)
	}
}

// Publish0 fans out a zero-argument event to every current subscriber
// of topic. It fails with ErrDisciplineMismatch on a PRIORITY bus.
func Publish0(b *Bus, topic string) error {
	return b.publish(topic, nil, nil)
}

// Publish1 fans out a one-argument event.
func Publish1[A any](b *Bus, topic string, a A) error {
	return b.publish(topic, nil, []any{a})
}

// Publish2 fans out a two-argument event.
func Publish2[A, B any](b *Bus, topic string, a A, c B) error {
	return b.publish(topic, nil, []any{a, c})
}

// Publish3 fans out a three-argument event.
func Publish3[A, B, C any](b *Bus, topic string, a A, c B, d C) error {
	return b.publish(topic, nil, []any{a, c, d})
}

// PublishWithPriority0 is Publish0 under priority class p. It fails
// with ErrDisciplineMismatch on a NORMAL bus.
func PublishWithPriority0(b *Bus, p queue.Class, topic string) error {
	return b.publish(topic, &p, nil)
}

// PublishWithPriority1 is Publish1 under priority class p.
func PublishWithPriority1[A any](b *Bus, p queue.Class, topic string, a A) error {
	return b.publish(topic, &p, []any{a})
}

// PublishWithPriority2 is Publish2 under priority class p.
func PublishWithPriority2[A, B any](b *Bus, p queue.Class, topic string, a A, c B) error {
	return b.publish(topic, &p, []any{a, c})
}

// PublishWithPriority3 is Publish3 under priority class p.
func PublishWithPriority3[A, B, C any](b *Bus, p queue.Class, topic string, a A, c B, d C) error {
	return b.publish(topic, &p, []any{a, c, d})
}
