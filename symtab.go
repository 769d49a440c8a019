package lartar

// Intern returns the canonical Symbol cell for name, allocating and
// registering a new one on first use. Every other part of the
// interpreter compares symbols by pointer identity (reserved-form
// dispatch in Eval, setf/lookup's symbol match), so two calls to
// Intern with the same name must always return the same *Value;
// original_source/lisp.c's find_symbol()/intern() pair is the direct
// model, generalized from a linear C linked list walk to a walk over
// interp.Symbols, a Cons chain of symbol cells terminated by NilValue.
func (interp *Interpreter) Intern(name string) (*Value, error) {
	for cur := interp.Symbols; cur != interp.NilValue; cur = cur.Cdr {
		if cur.Car.Name == name {
			return cur.Car, nil
		}
	}
	sym, err := interp.newSymbolRaw(name)
	if err != nil {
		return nil, err
	}
	list, err := interp.Cons(sym, interp.Symbols)
	if err != nil {
		return nil, err
	}
	interp.Symbols = list
	return sym, nil
}
