package lartar

// Eval evaluates form in env, triggering a collection first whenever
// the allocator has crossed the configured threshold. Unlike the
// textbook "only collect at the outermost call" design, this check
// runs on every invocation, including ones Eval makes of itself while
// evaluating a subform: with the reference default of
// KeyGCThreshold=1, a collection can happen at essentially any
// allocation, so form is pushed on the root stack before the check
// can fire. Without this, a freshly consed form reachable only from
// a caller's Go local (cmd/lartar/main.go's parsed program,
// evalProcApply's `(progn . body)` wrapper) would be swept out from
// under Eval before the switch below ever reads it.
func Eval(interp *Interpreter, form, env *Value) (*Value, error) {
	CheckLive(form, "eval")
	pop, err := interp.Roots.Push(form)
	if err != nil {
		return nil, err
	}
	defer pop.Pop()

	if interp.Heap.AllocationsSinceGC > int64(interp.Config.GetInt(KeyGCThreshold)) {
		interp.Collect()
	}

	switch form.Tag {
	case Symbol:
		entry := lookup(interp, form, env)
		if entry == interp.NilValue {
			return nil, UnboundSymbolError{Name: form.Name}
		}
		return entry.Cdr, nil
	case Cons:
		return evalCombination(interp, form, env)
	default:
		// Int, Proc, Primitive, Macro are self-evaluating.
		return form, nil
	}
}

func evalCombination(interp *Interpreter, form, env *Value) (*Value, error) {
	head := form.Car
	switch head {
	case interp.QuoteSym:
		return form.Cdr.Car, nil
	case interp.IfSym:
		return evalIf(interp, form, env)
	case interp.PrognSym:
		return evalProgn(interp, form.Cdr, env)
	case interp.LambdaSym:
		return interp.NewProc(form.Cdr.Car, form.Cdr.Cdr, env)
	case interp.DefineSym:
		return evalDefine(interp, form, env)
	case interp.SetfSym:
		return evalSetf(interp, form, env)
	case interp.DefmacroSym:
		return evalDefmacro(interp, form)
	default:
		return evalApply(interp, form, env)
	}
}

func evalIf(interp *Interpreter, form, env *Value) (*Value, error) {
	cond, err := Eval(interp, form.Cdr.Car, env)
	if err != nil {
		return nil, err
	}
	clauses := form.Cdr.Cdr
	if cond != interp.NilValue {
		return Eval(interp, clauses.Car, env)
	}
	alt := clauses.Cdr
	if alt == interp.NilValue {
		return interp.NilValue, nil
	}
	return Eval(interp, alt.Car, env)
}

// evalProgn evaluates every form in body in order, returning the last
// result, or nil if body is empty. define inside a progn's body
// extends whatever frame Eval was called with, per spec.md §9.
func evalProgn(interp *Interpreter, body, env *Value) (*Value, error) {
	if body == interp.NilValue {
		return interp.NilValue, nil
	}
	for {
		result, err := Eval(interp, body.Car, env)
		if err != nil {
			return nil, err
		}
		if body.Cdr == interp.NilValue {
			return result, nil
		}
		body = body.Cdr
	}
}

// evalDefine evaluates the value and installs it in the CURRENT
// frame, not necessarily the top level. Pinned per spec.md §9: a
// define inside a lambda body extends that call's local frame, and
// the binding disappears when the frame does.
func evalDefine(interp *Interpreter, form, env *Value) (*Value, error) {
	sym := form.Cdr.Car
	if sym.Tag != Symbol {
		return nil, TypeError{Message: "define: target is not a symbol"}
	}
	val, err := Eval(interp, form.Cdr.Cdr.Car, env)
	if err != nil {
		return nil, err
	}
	if err := interp.extend(env, sym, val); err != nil {
		return nil, err
	}
	return val, nil
}

// evalSetf looks up sym's existing binding and overwrites it with the
// RHS form UNEVALUATED. Pinned per spec.md §9: this is existing
// behavior to preserve, not a bug: (setf x (+ 1 2)) binds x to the
// literal form (+ 1 2), not to 3.
func evalSetf(interp *Interpreter, form, env *Value) (*Value, error) {
	sym := form.Cdr.Car
	if sym.Tag != Symbol {
		return nil, TypeError{Message: "setf: target is not a symbol"}
	}
	rhs := form.Cdr.Cdr.Car
	entry := lookup(interp, sym, env)
	if entry == interp.NilValue {
		return nil, UnboundSymbolError{Name: sym.Name}
	}
	entry.Cdr = rhs
	return rhs, nil
}

// evalDefmacro builds a macro closure over the top-level environment
// and installs it at the top level, regardless of where the defmacro
// form itself appears.
func evalDefmacro(interp *Interpreter, form *Value) (*Value, error) {
	name := form.Cdr.Car
	if name.Tag != Symbol {
		return nil, TypeError{Message: "defmacro: name is not a symbol"}
	}
	params := form.Cdr.Cdr.Car
	body := form.Cdr.Cdr.Cdr
	macro, err := interp.NewMacro(params, body, interp.TopLevel)
	if err != nil {
		return nil, err
	}
	if err := interp.extend(interp.TopLevel, name, macro); err != nil {
		return nil, err
	}
	return macro, nil
}

// evalArgs evaluates each element of list left to right, consing the
// results into a new list. The just-evaluated head is pushed on the
// root stack while the (possibly collection-triggering) recursive call
// evaluates the tail, per spec.md §4.5.
func evalArgs(interp *Interpreter, list, env *Value) (*Value, error) {
	if list == interp.NilValue {
		return interp.NilValue, nil
	}
	head, err := Eval(interp, list.Car, env)
	if err != nil {
		return nil, err
	}
	pop, err := interp.Roots.Push(head)
	if err != nil {
		return nil, err
	}
	defer pop.Pop()

	tail, err := evalArgs(interp, list.Cdr, env)
	if err != nil {
		return nil, err
	}
	return interp.Cons(head, tail)
}

// evalApply evaluates a combination whose head is neither a special
// form keyword nor reserved: evaluate the head, evaluate the
// arguments, then apply a primitive directly, apply a procedure by
// building a new frame and evaluating its body there, or expand a
// macro and evaluate the expansion in the caller's environment.
// Every intermediate that must survive a subsequent allocation is
// rooted, per spec.md §4.5's "protected via the root stack."
func evalApply(interp *Interpreter, form, env *Value) (*Value, error) {
	headVal, err := Eval(interp, form.Car, env)
	if err != nil {
		return nil, err
	}
	popHead, err := interp.Roots.Push(headVal)
	if err != nil {
		return nil, err
	}
	defer popHead.Pop()

	switch headVal.Tag {
	case Macro:
		return evalMacroApply(interp, headVal, form.Cdr, env)
	case Primitive, Proc:
		args, err := evalArgs(interp, form.Cdr, env)
		if err != nil {
			return nil, err
		}
		popArgs, err := interp.Roots.Push(args)
		if err != nil {
			return nil, err
		}
		defer popArgs.Pop()

		if headVal.Tag == Primitive {
			return headVal.Prim(interp, args)
		}
		return evalProcApply(interp, headVal, args)
	default:
		return nil, TypeError{Message: "Unsupported procedure type"}
	}
}

func evalProcApply(interp *Interpreter, proc, args *Value) (*Value, error) {
	newEnv, err := interp.multiExtend(proc.Env, proc.Params, args)
	if err != nil {
		return nil, err
	}
	popEnv, err := interp.Roots.Push(newEnv)
	if err != nil {
		return nil, err
	}
	defer popEnv.Pop()

	bodyForm, err := interp.Cons(interp.PrognSym, proc.Body)
	if err != nil {
		return nil, err
	}
	return Eval(interp, bodyForm, newEnv)
}

// evalMacroApply binds the macro's parameters to the UNEVALUATED
// argument forms, evaluates the body in that frame to produce an
// expansion, then evaluates the expansion in the caller's environment.
// Each of the four intermediates named in spec.md §4.5 (raw args, new
// frame, progn form, expansion) is rooted in turn while the next one is
// built, since this interpreter has no hygiene and no way to tell
// which captured references the expansion will end up holding.
func evalMacroApply(interp *Interpreter, macro, rawArgs, env *Value) (*Value, error) {
	popRaw, err := interp.Roots.Push(rawArgs)
	if err != nil {
		return nil, err
	}
	defer popRaw.Pop()

	macroEnv, err := interp.multiExtend(macro.Env, macro.Params, rawArgs)
	if err != nil {
		return nil, err
	}
	popEnv, err := interp.Roots.Push(macroEnv)
	if err != nil {
		return nil, err
	}
	defer popEnv.Pop()

	bodyForm, err := interp.Cons(interp.PrognSym, macro.Body)
	if err != nil {
		return nil, err
	}
	popBody, err := interp.Roots.Push(bodyForm)
	if err != nil {
		return nil, err
	}
	defer popBody.Pop()

	expansion, err := Eval(interp, bodyForm, macroEnv)
	if err != nil {
		return nil, err
	}
	popExpansion, err := interp.Roots.Push(expansion)
	if err != nil {
		return nil, err
	}
	defer popExpansion.Pop()

	return Eval(interp, expansion, env)
}
