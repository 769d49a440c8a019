package lartar

// Interpreter bundles the heap, root stack, symbol table, and top-level
// environment that together make up one running instance. Nothing
// about it is a package-level singleton; cmd/lartar constructs exactly
// one per process, but tests are free to construct several side by
// side without interference.
type Interpreter struct {
	Heap   *Heap
	Roots  *RootStack
	Config *Config

	// Symbols is the global interned-symbol list: a Cons chain whose
	// elements are the canonical Symbol cells themselves, terminated
	// by NilValue. It is one of the collector's two standing roots.
	Symbols *Value

	// TopLevel is the outermost environment frame. It is the
	// collector's other standing root.
	TopLevel *Value

	NilValue *Value
	TValue   *Value

	QuoteSym    *Value
	IfSym       *Value
	LambdaSym   *Value
	PrognSym    *Value
	SetfSym     *Value
	DefineSym   *Value
	DefmacroSym *Value
}

// NewInterpreter builds a fresh interpreter: heap, root stack, the nil
// and t symbols, the reserved special-form symbols, an empty top-level
// frame, and the primitive procedures, in that order. The bootstrap
// sequence mirrors original_source/lisp.c's main()/init_env(): nil must
// exist before anything else, since it doubles as both "the false
// value" and "the empty list" sentinel that every other constructor
// compares against.
func NewInterpreter(cfg *Config) (*Interpreter, error) {
	interp := &Interpreter{
		Heap:   NewHeap(cfg.GetInt(KeySlabSize)),
		Roots:  NewRootStack(cfg.GetInt(KeyRootStackCapacity)),
		Config: cfg,
	}

	nilSym, err := interp.newSymbolRaw("nil")
	if err != nil {
		return nil, err
	}
	interp.NilValue = nilSym
	interp.Symbols = nilSym
	interp.Symbols, err = interp.Cons(nilSym, interp.Symbols)
	if err != nil {
		return nil, err
	}

	reserved := []struct {
		name string
		dest **Value
	}{
		{"t", &interp.TValue},
		{"quote", &interp.QuoteSym},
		{"if", &interp.IfSym},
		{"lambda", &interp.LambdaSym},
		{"progn", &interp.PrognSym},
		{"setf", &interp.SetfSym},
		{"define", &interp.DefineSym},
		{"defmacro", &interp.DefmacroSym},
	}
	for _, r := range reserved {
		sym, err := interp.Intern(r.name)
		if err != nil {
			return nil, err
		}
		*r.dest = sym
	}

	interp.TopLevel, err = interp.Cons(interp.NilValue, interp.NilValue)
	if err != nil {
		return nil, err
	}

	// nil and t evaluate to themselves through ordinary symbol lookup
	// (spec.md §4.5 gives SYMBOL no self-evaluating exception), so both
	// need an explicit top-level binding to themselves.
	if err := interp.extend(interp.TopLevel, interp.NilValue, interp.NilValue); err != nil {
		return nil, err
	}
	if err := interp.extend(interp.TopLevel, interp.TValue, interp.TValue); err != nil {
		return nil, err
	}

	if err := interp.installPrimitives(); err != nil {
		return nil, err
	}

	return interp, nil
}

// Nil returns the canonical nil/false/empty-list value.
func (interp *Interpreter) Nil() *Value { return interp.NilValue }

// T returns the canonical true value.
func (interp *Interpreter) T() *Value { return interp.TValue }

// TopLevelEnv returns the outermost environment frame.
func (interp *Interpreter) TopLevelEnv() *Value { return interp.TopLevel }

func (interp *Interpreter) installPrimitives() error {
	prims := []struct {
		name string
		fn   PrimitiveFunc
	}{
		{"cons", primitiveCons},
		{"car", primitiveCar},
		{"cdr", primitiveCdr},
		{"+", primitivePlus},
		{"-", primitiveMinus},
		{"*", primitiveMultiply},
		{"/", primitiveDivide},
		{"=", primitiveEquals},
	}
	for _, p := range prims {
		sym, err := interp.Intern(p.name)
		if err != nil {
			return err
		}
		val, err := interp.NewPrimitive(p.name, p.fn)
		if err != nil {
			return err
		}
		if err := interp.extend(interp.TopLevel, sym, val); err != nil {
			return err
		}
	}
	return nil
}
