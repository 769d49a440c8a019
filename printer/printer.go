// Package printer renders lartar Values back to their textual form:
// base-10 integers, symbols by name, cons lists parenthesized and
// space-separated with a dotted tail where the list is improper, and a
// `#<TAG>` placeholder for the callable tags. This is the inverse of
// package reader for every value reader can produce, matching
// spec.md §6 and the round-trip property in §8.
package printer

import (
	"strconv"
	"strings"

	"github.com/lartar-lang/lartar"
)

// Print renders v as a string.
func Print(interp *lartar.Interpreter, v *lartar.Value) string {
	var b strings.Builder
	write(interp, &b, v)
	return b.String()
}

func write(interp *lartar.Interpreter, b *strings.Builder, v *lartar.Value) {
	lartar.CheckLive(v, "print")
	if v == interp.Nil() {
		b.WriteString("nil")
		return
	}
	switch v.Tag {
	case lartar.Int:
		b.WriteString(strconv.FormatInt(v.IntVal, 10))
	case lartar.Symbol:
		b.WriteString(v.Name)
	case lartar.Cons:
		writeList(interp, b, v)
	case lartar.Proc:
		b.WriteString("#<PROC>")
	case lartar.Primitive:
		b.WriteString("#<PRIMITIVE>")
	case lartar.Macro:
		b.WriteString("#<MACRO>")
	default:
		b.WriteString("#<GUARD>")
	}
}

func writeList(interp *lartar.Interpreter, b *strings.Builder, v *lartar.Value) {
	b.WriteString("(")
	cur := v
	first := true
	for {
		if !first {
			b.WriteString(" ")
		}
		first = false
		write(interp, b, cur.Car)
		next := cur.Cdr
		if next == interp.Nil() {
			break
		}
		if next.Tag != lartar.Cons {
			b.WriteString(" . ")
			write(interp, b, next)
			break
		}
		cur = next
	}
	b.WriteString(")")
}
