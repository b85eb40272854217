package eventbus

import "github.com/hollowflare/eventbus/eventbus/internal/invoke"

func (b *Bus) subscribe(topic string, inv invoke.Invoker, autoRegister bool) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireInitialized(); err != nil {
		return 0, err
	}

	entry, ok := b.registry[topic]
	if !ok {
		if !autoRegister {
			return 0, ErrTopicUnknown
		}
		entry = &topicEntry{name: topic, handlers: make([]*handlerRecord, 0, 3)}
		b.registry[topic] = entry
	}

	id := b.nextID.Add(1)
	entry.handlers = append(entry.handlers, &handlerRecord{id: id, invoker: inv})
	return id, nil
}

// Subscribe0 registers a zero-argument handler on topic. It fails with
// ErrTopicUnknown if topic was never registered.
func Subscribe0(b *Bus, topic string, handler func()) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker0(handler), false)
}

// Subscribe1 registers a one-argument handler on topic.
func Subscribe1[A any](b *Bus, topic string, handler func(A)) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker1(handler), false)
}

// Subscribe2 registers a two-argument handler on topic.
func Subscribe2[A, B any](b *Bus, topic string, handler func(A, B)) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker2(handler), false)
}

// Subscribe3 registers a three-argument handler on topic.
func Subscribe3[A, B, C any](b *Bus, topic string, handler func(A, B, C)) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker3(handler), false)
}

// SubscribeSafe0 is Subscribe0 but auto-registers topic if absent.
func SubscribeSafe0(b *Bus, topic string, handler func()) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker0(handler), true)
}

// SubscribeSafe1 is Subscribe1 but auto-registers topic if absent.
func SubscribeSafe1[A any](b *Bus, topic string, handler func(A)) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker1(handler), true)
}

// SubscribeSafe2 is Subscribe2 but auto-registers topic if absent.
func SubscribeSafe2[A, B any](b *Bus, topic string, handler func(A, B)) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker2(handler), true)
}

// SubscribeSafe3 is Subscribe3 but auto-registers topic if absent.
func SubscribeSafe3[A, B, C any](b *Bus, topic string, handler func(A, B, C)) (uint64, error) {
	return b.subscribe(topic, invoke.NewInvoker3(handler), true)
}
