package lartar

// Environment frames are represented as Cons cells: Car holds the
// frame's own association list (a Cons chain of (symbol . value)
// pairs), Cdr holds the enclosing frame, and NilValue terminates the
// chain at the top level. See value.go's doc comment on Value.Env for
// why there is no separate frame type: it keeps a dynamically created
// frame collectible by the ordinary Cons marking rule, and lets a new
// frame be protected from a concurrent collection simply by pushing it
// on the root stack like any other cell (spec.md §4.4, §9).

// extend prepends (sym . val) to env's own association list, mutating
// the frame in place. This is what define and top-level primitive
// registration use; original_source/lisp.c's extend() does the
// equivalent cons-and-rebind, except there env itself was reassigned
// since C's env doubled as both "current frame" and "the whole
// chain"; here only the frame's Car changes, since Cdr (the parent
// link) is the frame's own identity.
func (interp *Interpreter) extend(env, sym, val *Value) error {
	pair, err := interp.Cons(sym, val)
	if err != nil {
		return err
	}
	alist, err := interp.Cons(pair, env.Car)
	if err != nil {
		return err
	}
	env.Car = alist
	return nil
}

// multiExtend builds a new child frame enclosing env, pairing each
// symbol in params with the corresponding value in args positionally.
// Extra args are dropped and short params are left unbound, matching
// original_source/lisp.c's multiple_extend(): neither is arity-checked
// there, and nothing in spec.md §4.4 asks for a stricter rendition.
func (interp *Interpreter) multiExtend(env, params, args *Value) (*Value, error) {
	alist := interp.NilValue
	p, a := params, args
	for p != interp.NilValue && a != interp.NilValue {
		pair, err := interp.Cons(p.Car, a.Car)
		if err != nil {
			return nil, err
		}
		next, err := interp.Cons(pair, alist)
		if err != nil {
			return nil, err
		}
		alist = next
		p, a = p.Cdr, a.Cdr
	}
	return interp.Cons(alist, env)
}

// lookup searches env's frame chain for sym, returning the (sym . val)
// pair cell itself (so setf can mutate its Cdr in place) or NilValue if
// sym is unbound anywhere in the chain.
func lookup(interp *Interpreter, sym, env *Value) *Value {
	for env != interp.NilValue {
		for entry := env.Car; entry != interp.NilValue; entry = entry.Cdr {
			if entry.Car.Car == sym {
				return entry.Car
			}
		}
		env = env.Cdr
	}
	return interp.NilValue
}
