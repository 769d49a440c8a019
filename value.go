package lartar

import "fmt"

// Tag identifies which variant of Value a cell currently holds. This is
// the sum-type-over-a-struct rendition of spec.md §9's "tagged union of
// cell variants" design note: a Go interface dispatching to separate
// concrete types would hide the child pointers the collector needs to
// walk from the mark phase, so a single struct with a Tag discriminant
// is used instead, generalized from the teacher's tagged Value interface
// in value.go (Type()/Range()/String()/Accept()) down to a plain enum.
type Tag int

const (
	// Guard marks a cell that has been freed by the collector. Any
	// access to a Guard cell is a bug and panics (see errors.go).
	Guard Tag = iota
	Symbol
	Cons
	Int
	Proc
	Primitive
	Macro
)

func (t Tag) String() string {
	switch t {
	case Guard:
		return "GUARD"
	case Symbol:
		return "SYMBOL"
	case Cons:
		return "CONS"
	case Int:
		return "INT"
	case Proc:
		return "PROC"
	case Primitive:
		return "PRIMITIVE"
	case Macro:
		return "MACRO"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// PrimitiveFunc is the signature of a built-in operation: it receives the
// already-evaluated argument list as a cons chain and returns a result.
type PrimitiveFunc func(interp *Interpreter, args *Value) (*Value, error)

// Value is a single heap cell. Only the fields relevant to Tag are
// meaningful; Allocate zeroes payloads, but code must still never read a
// field before the tag that owns it has been set by a constructor.
//
// Payloads:
//   - Symbol:      Name
//   - Cons:        Car, Cdr
//   - Int:         IntVal
//   - Primitive:   Prim, PrimName
//   - Proc, Macro: Params, Body, Env (closure triple)
//
// Environment frames are not a distinct Go type: a frame is itself a
// Cons cell whose Car is an association list (a Cons chain of (symbol
// . value) pairs) and whose Cdr is the enclosing frame, or NilValue at
// the top level. This mirrors original_source/lisp.c, where "env" is
// simply a value_t* threaded through eval, and it means the collector
// needs no frame-specific marking rule: a reachable frame is marked by
// the same Cons case that marks any other cons chain.
type Value struct {
	Tag Tag

	Name string // Symbol

	Car *Value // Cons
	Cdr *Value // Cons

	IntVal int64 // Int

	Prim     PrimitiveFunc // Primitive
	PrimName string        // Primitive, for printing/debugging

	Params *Value // Proc, Macro
	Body   *Value // Proc, Macro
	Env    *Value // Proc, Macro: captured frame (a Cons cell, see above)

	// mark is used exclusively by the collector during mark/sweep.
	mark bool
	// inUse tracks whether the backing slot is currently allocated.
	inUse bool
	// slab/index record this cell's home slab and slot; Allocate sets
	// them, and nothing else currently reads them.
	slab  *slab
	index int
}

// CheckLive panics with GuardAccessError if v has been freed. Eval calls
// it on every form it evaluates and the printer on every value it
// renders, so a dangling reference into swept memory reaching either
// fails loudly rather than reading poisoned data, per spec.md §7's
// memory-safety error class. Other field accesses are not checked.
func CheckLive(v *Value, op string) {
	if v != nil && v.Tag == Guard {
		guardPanic(op)
	}
}
