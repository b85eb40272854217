// Package invoke holds the type-erasure machinery that lets handlers of
// arbitrary argument lists live together in one registry while the pool
// sees only opaque zero-argument work. An Invoker is built once, at
// subscribe time, from a concrete Go function; its arity and per-position
// types are then fixed. At publish time the dispatcher hands every
// invoker the same shared argument tuple; an invoker that doesn't match
// reports ErrSignatureMismatch instead of calling the user's handler.
package invoke

// Invoker is the uniform, erased shape every handler is stored behind.
type Invoker interface {
	// Arity is the number of arguments this invoker's handler expects.
	Arity() int
	// Invoke applies args to the wrapped handler. It returns
	// ErrSignatureMismatch without calling the handler if args doesn't
	// match the declared arity or per-position types.
	Invoke(args []any) error
}

// Invoker0 wraps a zero-argument handler.
type Invoker0 struct {
	fn func()
}

// NewInvoker0 builds an Invoker for a zero-argument handler.
func NewInvoker0(fn func()) *Invoker0 {
	return &Invoker0{fn: fn}
}

func (i *Invoker0) Arity() int { return 0 }

func (i *Invoker0) Invoke(args []any) error {
	if len(args) != 0 {
		return ErrSignatureMismatch
	}
	i.fn()
	return nil
}

// Invoker1 wraps a one-argument handler.
type Invoker1[A any] struct {
	fn func(A)
}

// NewInvoker1 builds an Invoker for a one-argument handler.
func NewInvoker1[A any](fn func(A)) *Invoker1[A] {
	return &Invoker1[A]{fn: fn}
}

func (i *Invoker1[A]) Arity() int { return 1 }

func (i *Invoker1[A]) Invoke(args []any) error {
	if len(args) != 1 {
		return ErrSignatureMismatch
	}
	a, ok := args[0].(A)
	if !ok {
		return ErrSignatureMismatch
	}
	i.fn(a)
	return nil
}

// Invoker2 wraps a two-argument handler.
type Invoker2[A, B any] struct {
	fn func(A, B)
}

// NewInvoker2 builds an Invoker for a two-argument handler.
func NewInvoker2[A, B any](fn func(A, B)) *Invoker2[A, B] {
	return &Invoker2[A, B]{fn: fn}
}

func (i *Invoker2[A, B]) Arity() int { return 2 }

func (i *Invoker2[A, B]) Invoke(args []any) error {
	if len(args) != 2 {
		return ErrSignatureMismatch
	}
	a, ok := args[0].(A)
	if !ok {
		return ErrSignatureMismatch
	}
	b, ok := args[1].(B)
	if !ok {
		return ErrSignatureMismatch
	}
	i.fn(a, b)
	return nil
}

// Invoker3 wraps a three-argument handler.
type Invoker3[A, B, C any] struct {
	fn func(A, B, C)
}

// NewInvoker3 builds an Invoker for a three-argument handler.
func NewInvoker3[A, B, C any](fn func(A, B, C)) *Invoker3[A, B, C] {
	return &Invoker3[A, B, C]{fn: fn}
}

func (i *Invoker3[A, B, C]) Arity() int { return 3 }

func (i *Invoker3[A, B, C]) Invoke(args []any) error {
	if len(args) != 3 {
		return ErrSignatureMismatch
	}
	a, ok := args[0].(A)
	if !ok {
		return ErrSignatureMismatch
	}
	b, ok := args[1].(B)
	if !ok {
		return ErrSignatureMismatch
	}
	c, ok := args[2].(C)
	if !ok {
		return ErrSignatureMismatch
	}
	i.fn(a, b, c)
	return nil
}
