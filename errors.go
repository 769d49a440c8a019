package lartar

import "fmt"

// SyntaxError is thrown by the reader for malformed input: an unmatched
// closing paren, or a token overflowing the token buffer.
type SyntaxError struct {
	Message string
}

func (e SyntaxError) Error() string { return e.Message }

// UnboundSymbolError is thrown when evaluating a symbol with no binding
// anywhere in the environment chain.
type UnboundSymbolError struct {
	Name string
}

func (e UnboundSymbolError) Error() string {
	return fmt.Sprintf("Unbound symbol: %s", e.Name)
}

// TypeError is thrown when a primitive or special form receives a value
// of the wrong kind: a non-symbol setf/define target, a non-integer
// argument to an arithmetic primitive, a combination head that isn't
// callable.
type TypeError struct {
	Message string
}

func (e TypeError) Error() string { return e.Message }

// ArityError is thrown when a primitive receives too few arguments for
// its domain (`=`, `/`).
type ArityError struct {
	Message string
}

func (e ArityError) Error() string { return e.Message }

// ResourceError is thrown when a fixed-capacity resource is exhausted:
// the root stack overflows, or the host allocator fails.
type ResourceError struct {
	Message string
}

func (e ResourceError) Error() string { return e.Message }

// GuardAccessError indicates a cell tagged GUARD (already freed by the
// collector) was dereferenced. This can only happen if the collector
// freed a cell that was still reachable, which is always a bug in the
// GC or in root-stack discipline, never in user code. It is raised with
// panic rather than returned, so that it cannot be silently ignored by
// a caller that forgets to check an error return.
type GuardAccessError struct {
	Message string
}

func (e GuardAccessError) Error() string { return e.Message }

func guardPanic(op string) {
	panic(GuardAccessError{Message: fmt.Sprintf("access to freed (GUARD) cell during %s", op)})
}
