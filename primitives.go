package lartar

// carOf and cdrOf implement the primitives' nil-safe car/cdr:
// car(nil) = nil, cdr(nil) = nil, and anything else that isn't a Cons
// is a TypeError. original_source/lisp.c's car()/cdr() instead read
// straight through the C union without a nil check's cost, relying on
// nil_v's own cons fields being zeroed to the same effect; here the
// check is explicit since Value has no such union to lean on.
func carOf(interp *Interpreter, v *Value) (*Value, error) {
	if v == interp.NilValue {
		return interp.NilValue, nil
	}
	if v.Tag != Cons {
		return nil, TypeError{Message: "car: argument is not a cons"}
	}
	return v.Car, nil
}

func cdrOf(interp *Interpreter, v *Value) (*Value, error) {
	if v == interp.NilValue {
		return interp.NilValue, nil
	}
	if v.Tag != Cons {
		return nil, TypeError{Message: "cdr: argument is not a cons"}
	}
	return v.Cdr, nil
}

// primitiveCons implements (cons a b) as cons(car(args), car(cdr(args))),
// matching original_source/lisp.c's primitive_cons() exactly, including
// its tolerance for a missing second argument (car of nil is nil).
func primitiveCons(interp *Interpreter, args *Value) (*Value, error) {
	a, err := carOf(interp, args)
	if err != nil {
		return nil, err
	}
	rest, err := cdrOf(interp, args)
	if err != nil {
		return nil, err
	}
	b, err := carOf(interp, rest)
	if err != nil {
		return nil, err
	}
	return interp.Cons(a, b)
}

// primitiveCar implements (car x) as car(car(args)).
func primitiveCar(interp *Interpreter, args *Value) (*Value, error) {
	first, err := carOf(interp, args)
	if err != nil {
		return nil, err
	}
	return carOf(interp, first)
}

// primitiveCdr implements (cdr x) as cdr(car(args)).
func primitiveCdr(interp *Interpreter, args *Value) (*Value, error) {
	first, err := carOf(interp, args)
	if err != nil {
		return nil, err
	}
	return cdrOf(interp, first)
}

// primitivePlus sums every argument, 0 for no arguments at all.
func primitivePlus(interp *Interpreter, args *Value) (*Value, error) {
	var sum int64
	for cur := args; cur != interp.NilValue; cur = cur.Cdr {
		if cur.Tag != Cons {
			return nil, TypeError{Message: "+: improper argument list"}
		}
		if cur.Car.Tag != Int {
			return nil, TypeError{Message: "+: arguments must be integers"}
		}
		sum += cur.Car.IntVal
	}
	return interp.NewInt(sum)
}

// primitiveMinus negates a single argument, or left-folds subtraction
// from the first argument across the rest; zero arguments yields 0,
// matching original_source/lisp.c's primitive_minus(), which never
// special-cases the empty list.
func primitiveMinus(interp *Interpreter, args *Value) (*Value, error) {
	var sum int64
	count := 0
	for cur := args; cur != interp.NilValue; cur = cur.Cdr {
		if cur.Tag != Cons {
			return nil, TypeError{Message: "-: improper argument list"}
		}
		if cur.Car.Tag != Int {
			return nil, TypeError{Message: "-: arguments must be integers"}
		}
		if count == 0 {
			sum = cur.Car.IntVal
		} else {
			sum -= cur.Car.IntVal
		}
		count++
	}
	if count == 1 {
		return interp.NewInt(-sum)
	}
	return interp.NewInt(sum)
}

// primitiveMultiply takes the product of every argument, 1 for no
// arguments, the multiplicative counterpart spec.md §4.6 asks for
// alongside the original's +/-.
func primitiveMultiply(interp *Interpreter, args *Value) (*Value, error) {
	product := int64(1)
	for cur := args; cur != interp.NilValue; cur = cur.Cdr {
		if cur.Tag != Cons {
			return nil, TypeError{Message: "*: improper argument list"}
		}
		if cur.Car.Tag != Int {
			return nil, TypeError{Message: "*: arguments must be integers"}
		}
		product *= cur.Car.IntVal
	}
	return interp.NewInt(product)
}

// primitiveDivide returns its single argument unchanged, or left-folds
// integer division from the first argument across the rest. Division
// by zero and a missing argument are both reported as ArityError,
// spec.md §7's "arity/domain" error class.
func primitiveDivide(interp *Interpreter, args *Value) (*Value, error) {
	if args == interp.NilValue {
		return nil, ArityError{Message: "/: needs at least one argument"}
	}
	if args.Tag != Cons || args.Car.Tag != Int {
		return nil, TypeError{Message: "/: arguments must be integers"}
	}
	if args.Cdr == interp.NilValue {
		return args.Car, nil
	}
	result := args.Car.IntVal
	for cur := args.Cdr; cur != interp.NilValue; cur = cur.Cdr {
		if cur.Tag != Cons || cur.Car.Tag != Int {
			return nil, TypeError{Message: "/: arguments must be integers"}
		}
		if cur.Car.IntVal == 0 {
			return nil, ArityError{Message: "/: division by zero"}
		}
		result /= cur.Car.IntVal
	}
	return interp.NewInt(result)
}

// primitiveEquals reports whether every argument is numerically equal.
// A single argument is trivially equal to itself and returns t; zero
// arguments is an ArityError. Both are spec.md §9 Open Questions pinned
// as existing behavior to preserve, not bugs to fix.
func primitiveEquals(interp *Interpreter, args *Value) (*Value, error) {
	if args == interp.NilValue {
		return nil, ArityError{Message: "=: needs at least one argument"}
	}
	if args.Tag != Cons || args.Car.Tag != Int {
		return nil, TypeError{Message: "=: arguments must be integers"}
	}
	first := args.Car.IntVal
	for cur := args.Cdr; cur != interp.NilValue; cur = cur.Cdr {
		if cur.Tag != Cons || cur.Car.Tag != Int {
			return nil, TypeError{Message: "=: arguments must be integers"}
		}
		if cur.Car.IntVal != first {
			return interp.NilValue, nil
		}
	}
	return interp.TValue, nil
}
