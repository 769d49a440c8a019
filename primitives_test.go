package lartar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkInt(t *testing.T, interp *Interpreter, n int64) *Value {
	t.Helper()
	v, err := interp.NewInt(n)
	assert.NoError(t, err)
	return v
}

func TestPrimitiveCons(t *testing.T) {
	interp := newTestInterpreter(t)
	a, b := mkInt(t, interp, 1), mkInt(t, interp, 2)
	args := list(t, interp, a, b)

	result, err := primitiveCons(interp, args)
	assert.NoError(t, err)
	assert.Same(t, a, result.Car)
	assert.Same(t, b, result.Cdr)
}

func TestPrimitiveCarCdr(t *testing.T) {
	interp := newTestInterpreter(t)
	inner := list(t, interp, mkInt(t, interp, 1), mkInt(t, interp, 2), mkInt(t, interp, 3))
	args := list(t, interp, inner)

	car, err := primitiveCar(interp, args)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), car.IntVal)

	cdr, err := primitiveCdr(interp, args)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), cdr.Car.IntVal)
}

func TestPrimitiveCarCdr_OfNilIsNil(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, interp.NilValue)

	car, err := primitiveCar(interp, args)
	assert.NoError(t, err)
	assert.Same(t, interp.NilValue, car)

	cdr, err := primitiveCdr(interp, args)
	assert.NoError(t, err)
	assert.Same(t, interp.NilValue, cdr)
}

func TestPrimitivePlus(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 1), mkInt(t, interp, 2), mkInt(t, interp, 3))
	result, err := primitivePlus(interp, args)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), result.IntVal)
}

func TestPrimitivePlus_NoArgsIsZero(t *testing.T) {
	interp := newTestInterpreter(t)
	result, err := primitivePlus(interp, interp.NilValue)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.IntVal)
}

func TestPrimitiveMinus_SingleArgNegates(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 10))
	result, err := primitiveMinus(interp, args)
	assert.NoError(t, err)
	assert.Equal(t, int64(-10), result.IntVal)
}

func TestPrimitiveMinus_FoldsLeft(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 10), mkInt(t, interp, 3), mkInt(t, interp, 2))
	result, err := primitiveMinus(interp, args)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), result.IntVal)
}

func TestPrimitiveMultiply(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 2), mkInt(t, interp, 3), mkInt(t, interp, 4))
	result, err := primitiveMultiply(interp, args)
	assert.NoError(t, err)
	assert.Equal(t, int64(24), result.IntVal)
}

func TestPrimitiveDivide_SingleArgUnchanged(t *testing.T) {
	interp := newTestInterpreter(t)
	seven := mkInt(t, interp, 7)
	args := list(t, interp, seven)
	result, err := primitiveDivide(interp, args)
	assert.NoError(t, err)
	assert.Same(t, seven, result)
}

func TestPrimitiveDivide_FoldsLeft(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 100), mkInt(t, interp, 5), mkInt(t, interp, 2))
	result, err := primitiveDivide(interp, args)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), result.IntVal)
}

func TestPrimitiveDivide_ByZeroIsArityError(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 1), mkInt(t, interp, 0))
	_, err := primitiveDivide(interp, args)
	assert.IsType(t, ArityError{}, err)
}

// TestPrimitiveEquals_SingleArgIsTrue pins the Open Question decision
// that (= x) with exactly one argument always returns t.
func TestPrimitiveEquals_SingleArgIsTrue(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 5))
	result, err := primitiveEquals(interp, args)
	assert.NoError(t, err)
	assert.Same(t, interp.TValue, result)
}

func TestPrimitiveEquals_AllEqual(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 5), mkInt(t, interp, 5), mkInt(t, interp, 5))
	result, err := primitiveEquals(interp, args)
	assert.NoError(t, err)
	assert.Same(t, interp.TValue, result)
}

func TestPrimitiveEquals_NotAllEqual(t *testing.T) {
	interp := newTestInterpreter(t)
	args := list(t, interp, mkInt(t, interp, 5), mkInt(t, interp, 6))
	result, err := primitiveEquals(interp, args)
	assert.NoError(t, err)
	assert.Same(t, interp.NilValue, result)
}

func TestPrimitiveEquals_NoArgsIsArityError(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := primitiveEquals(interp, interp.NilValue)
	assert.IsType(t, ArityError{}, err)
}
