package lartar

// Cons allocates a new Cons cell. It is the only place a pair gets
// built, matching original_source/lisp.c's cons(); the other
// constructors below each call Heap.Allocate themselves.
func (interp *Interpreter) Cons(car, cdr *Value) (*Value, error) {
	v, err := interp.Heap.Allocate()
	if err != nil {
		return nil, err
	}
	v.Tag = Cons
	v.Car = car
	v.Cdr = cdr
	return v, nil
}

// NewInt allocates an Int cell.
func (interp *Interpreter) NewInt(n int64) (*Value, error) {
	v, err := interp.Heap.Allocate()
	if err != nil {
		return nil, err
	}
	v.Tag = Int
	v.IntVal = n
	return v, nil
}

// newSymbolRaw allocates a Symbol cell without interning it. Only Intern
// and the bootstrap sequence in NewInterpreter may call this directly;
// everywhere else must go through Intern so that symbol identity stays
// canonical (spec.md §4.3).
func (interp *Interpreter) newSymbolRaw(name string) (*Value, error) {
	v, err := interp.Heap.Allocate()
	if err != nil {
		return nil, err
	}
	v.Tag = Symbol
	v.Name = name
	return v, nil
}

// NewProc allocates a closure over the given parameter list, body, and
// captured frame.
func (interp *Interpreter) NewProc(params, body, env *Value) (*Value, error) {
	v, err := interp.Heap.Allocate()
	if err != nil {
		return nil, err
	}
	v.Tag = Proc
	v.Params = params
	v.Body = body
	v.Env = env
	return v, nil
}

// NewMacro allocates a macro closure. Identical shape to Proc; kept as a
// distinct tag so Eval can tell "apply now" from "expand, then evaluate
// the expansion" at the dispatch site.
func (interp *Interpreter) NewMacro(params, body, env *Value) (*Value, error) {
	v, err := interp.Heap.Allocate()
	if err != nil {
		return nil, err
	}
	v.Tag = Macro
	v.Params = params
	v.Body = body
	v.Env = env
	return v, nil
}

// NewPrimitive allocates a cell wrapping a built-in Go function.
func (interp *Interpreter) NewPrimitive(name string, fn PrimitiveFunc) (*Value, error) {
	v, err := interp.Heap.Allocate()
	if err != nil {
		return nil, err
	}
	v.Tag = Primitive
	v.Prim = fn
	v.PrimName = name
	return v, nil
}
