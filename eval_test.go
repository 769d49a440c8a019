package lartar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// list builds a proper list from vs, terminated by interp.Nil().
func list(t *testing.T, interp *Interpreter, vs ...*Value) *Value {
	t.Helper()
	tail := interp.NilValue
	for i := len(vs) - 1; i >= 0; i-- {
		var err error
		tail, err = interp.Cons(vs[i], tail)
		assert.NoError(t, err)
	}
	return tail
}

func TestEval_SelfEvaluatingInt(t *testing.T) {
	interp := newTestInterpreter(t)
	n, _ := interp.NewInt(5)
	result, err := Eval(interp, n, interp.TopLevel)
	assert.NoError(t, err)
	assert.Same(t, n, result)
}

func TestEval_UnboundSymbol(t *testing.T) {
	interp := newTestInterpreter(t)
	sym, _ := interp.Intern("undefined-thing")
	_, err := Eval(interp, sym, interp.TopLevel)
	assert.IsType(t, UnboundSymbolError{}, err)
}

func TestEval_Quote(t *testing.T) {
	interp := newTestInterpreter(t)
	sym, _ := interp.Intern("foo")
	form := list(t, interp, interp.QuoteSym, sym)

	result, err := Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)
	assert.Same(t, sym, result, "quote must return its argument unevaluated and un-copied")
}

func TestEval_IfTrueAndFalseBranches(t *testing.T) {
	interp := newTestInterpreter(t)
	one, _ := interp.NewInt(1)
	two, _ := interp.NewInt(2)

	trueForm := list(t, interp, interp.IfSym, interp.TValue, one, two)
	result, err := Eval(interp, trueForm, interp.TopLevel)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.IntVal)

	falseForm := list(t, interp, interp.IfSym, interp.NilValue, one, two)
	result, err = Eval(interp, falseForm, interp.TopLevel)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.IntVal)
}

func TestEval_IfWithoutElseIsNil(t *testing.T) {
	interp := newTestInterpreter(t)
	one, _ := interp.NewInt(1)
	form := list(t, interp, interp.IfSym, interp.NilValue, one)

	result, err := Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)
	assert.Same(t, interp.NilValue, result)
}

func TestEval_Progn(t *testing.T) {
	interp := newTestInterpreter(t)
	one, _ := interp.NewInt(1)
	two, _ := interp.NewInt(2)
	form := list(t, interp, interp.PrognSym, one, two)

	result, err := Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.IntVal)
}

func TestEval_PrognSingleFormIsPassthrough(t *testing.T) {
	interp := newTestInterpreter(t)
	sym, _ := interp.Intern("x")
	val, _ := interp.NewInt(9)
	assert.NoError(t, interp.extend(interp.TopLevel, sym, val))

	form := list(t, interp, interp.PrognSym, sym)
	result, err := Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), result.IntVal)
}

func TestEval_DefineInstallsInCurrentFrame(t *testing.T) {
	interp := newTestInterpreter(t)
	sym, _ := interp.Intern("x")
	val, _ := interp.NewInt(10)

	form := list(t, interp, interp.DefineSym, sym, val)
	_, err := Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)

	entry := lookup(interp, sym, interp.TopLevel)
	assert.Equal(t, int64(10), entry.Cdr.IntVal)
}

// TestEval_DefineInsideLambdaStaysLocal pins the Open Question decision
// that define extends whatever frame is current, not necessarily the
// top level: a define inside a lambda body must not leak into the
// caller's environment.
func TestEval_DefineInsideLambdaStaysLocal(t *testing.T) {
	interp := newTestInterpreter(t)
	xSym, _ := interp.Intern("x")
	ySym, _ := interp.Intern("y")
	ten, _ := interp.NewInt(10)

	params := list(t, interp, xSym)
	body := list(t, interp, list(t, interp, interp.DefineSym, ySym, xSym))
	proc, err := interp.NewProc(params, body, interp.TopLevel)
	assert.NoError(t, err)

	form := list(t, interp, proc, ten)
	_, err = Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)

	assert.Equal(t, interp.NilValue, lookup(interp, ySym, interp.TopLevel),
		"y must not have leaked into the top level")
}

// TestEval_SetfDoesNotEvaluateRHS pins the Open Question decision that
// setf stores its right-hand side as a raw, unevaluated form.
func TestEval_SetfDoesNotEvaluateRHS(t *testing.T) {
	interp := newTestInterpreter(t)
	sym, _ := interp.Intern("x")
	zero, _ := interp.NewInt(0)
	assert.NoError(t, interp.extend(interp.TopLevel, sym, zero))

	plusSym, _ := interp.Intern("+")
	one, _ := interp.NewInt(1)
	two, _ := interp.NewInt(2)
	rhs := list(t, interp, plusSym, one, two)

	form := list(t, interp, interp.SetfSym, sym, rhs)
	result, err := Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)
	assert.Same(t, rhs, result)

	entry := lookup(interp, sym, interp.TopLevel)
	assert.Same(t, rhs, entry.Cdr, "setf must bind the raw form, not its evaluated result")
}

func TestEval_LambdaApplication(t *testing.T) {
	interp := newTestInterpreter(t)
	xSym, _ := interp.Intern("x")
	plusSym, _ := interp.Intern("+")
	one, _ := interp.NewInt(1)

	params := list(t, interp, xSym)
	body := list(t, interp, list(t, interp, plusSym, xSym, one))
	proc, err := interp.NewProc(params, body, interp.TopLevel)
	assert.NoError(t, err)

	fortyOne, _ := interp.NewInt(41)
	form := list(t, interp, proc, fortyOne)
	result, err := Eval(interp, form, interp.TopLevel)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.IntVal)
}

func TestEval_DefmacroInstallsAtTopLevelFromNestedScope(t *testing.T) {
	interp := newTestInterpreter(t)
	nameSym, _ := interp.Intern("identity-macro")
	argSym, _ := interp.Intern("a")
	params := list(t, interp, argSym)
	form := list(t, interp, interp.DefmacroSym, nameSym, params, argSym)

	nested, err := interp.multiExtend(interp.TopLevel, interp.NilValue, interp.NilValue)
	assert.NoError(t, err)
	pop, err := interp.Roots.Push(nested)
	assert.NoError(t, err)
	defer pop.Pop()

	_, err = Eval(interp, form, nested)
	assert.NoError(t, err)

	entry := lookup(interp, nameSym, interp.TopLevel)
	assert.NotEqual(t, interp.NilValue, entry)
	assert.Equal(t, Macro, entry.Cdr.Tag)
}

func TestEval_MacroExpandsUnevaluatedArgs(t *testing.T) {
	interp := newTestInterpreter(t)

	// (defmacro m (x) (quote (quote ok)))  ; body ignores x entirely
	nameSym, _ := interp.Intern("m")
	xSym, _ := interp.Intern("x")
	okSym, _ := interp.Intern("ok")
	quotedOk := list(t, interp, interp.QuoteSym, okSym)
	params := list(t, interp, xSym)
	defForm := list(t, interp, interp.DefmacroSym, nameSym,
		params, list(t, interp, interp.QuoteSym, quotedOk))
	_, err := Eval(interp, defForm, interp.TopLevel)
	assert.NoError(t, err)

	undefinedSym, _ := interp.Intern("this-symbol-is-never-bound")
	callForm := list(t, interp, nameSym, undefinedSym)
	result, err := Eval(interp, callForm, interp.TopLevel)
	assert.NoError(t, err)
	assert.Same(t, okSym, result)
}
