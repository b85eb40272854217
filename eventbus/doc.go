// Package eventbus implements an in-process, typed publish/subscribe
// event bus backed by package pool. Topics are registered, handlers of
// arbitrary (but bounded-arity) argument lists subscribe to a topic,
// and a publish fans out one work item per subscriber onto the
// underlying worker pool. Publishers never block on handler execution.
//
// Handlers are stored behind the type-erasure machinery in
// eventbus/internal/invoke: each subscription records its handler's
// exact argument signature at subscribe time, and a publish whose
// argument types don't match a given handler skips that handler and
// counts a failed dispatch instead of invoking it.
package eventbus
