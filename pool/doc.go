// Package pool implements a dynamic, auto-scaling worker pool with two
// queue disciplines (FIFO and priority). A fixed-size pool runs exactly
// ThreadMin workers for its lifetime; a dynamic pool also runs a manager
// goroutine that grows toward ThreadMax under backlog and shrinks back
// toward ThreadMin under idleness, damped to one action per tick.
//
// Work items are opaque zero-argument functions. The pool knows nothing
// about what they do; callers (typically package eventbus) are
// responsible for packing their own state into the closure.
package pool
