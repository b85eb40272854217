package invoke

import "errors"

// ErrSignatureMismatch is returned by Invoke when the supplied argument
// tuple's arity or per-position types don't match what the invoker was
// built for. The caller must count this as a failed dispatch without
// invoking the underlying handler.
var ErrSignatureMismatch = errors.New("invoke: signature mismatch")
