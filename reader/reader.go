// Package reader implements the tokenizer and recursive-descent parser
// that turn source text into lartar Values: integers, symbols, and
// cons-based lists built with quote shorthand expanded. It allocates
// every cell it produces straight on the interpreter's heap, the same
// way original_source/lisp.c's readobj()/readlist() build cons cells
// directly rather than through an intermediate AST.
package reader

import (
	"fmt"

	"github.com/lartar-lang/lartar"
)

// Reader holds the input and cursor for one parse. It is not
// reentrant-safe across goroutines, but nothing about this interpreter
// is (spec.md's Non-goals rule out multi-threading outright).
type Reader struct {
	interp *lartar.Interpreter
	src    []rune
	pos    int
	tokBuf int
}

// New creates a Reader over src for the given interpreter. The
// interpreter's KeyTokenBufSize config bounds how long a single token
// (symbol or number literal) may be before ReadObject reports a
// SyntaxError, matching original_source/lisp.c's fixed-size token
// buffer.
func New(interp *lartar.Interpreter, src string) *Reader {
	return &Reader{
		interp: interp,
		src:    []rune(src),
		tokBuf: interp.Config.GetInt(lartar.KeyTokenBufSize),
	}
}

func (r *Reader) peek() rune {
	if r.pos >= len(r.src) {
		return 0
	}
	return r.src[r.pos]
}

func (r *Reader) advance() rune {
	c := r.peek()
	r.pos++
	return c
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDelimiter(c rune) bool {
	return c == 0 || isSpace(c) || c == '(' || c == ')' || c == '\''
}

func (r *Reader) skipWhitespace() {
	for isSpace(r.peek()) {
		r.advance()
	}
}

// atEOF reports whether, after skipping whitespace, there is no more
// input.
func (r *Reader) atEOF() bool {
	r.skipWhitespace()
	return r.pos >= len(r.src)
}

// readToken scans one maximal run of non-delimiter runes, bounded by
// the configured token buffer size.
func (r *Reader) readToken() (string, error) {
	start := r.pos
	for !isDelimiter(r.peek()) {
		r.advance()
		if r.pos-start > r.tokBuf {
			return "", lartar.SyntaxError{Message: "token exceeds maximum length"}
		}
	}
	return string(r.src[start:r.pos]), nil
}

// isNumber reports whether tok parses as an optionally-signed integer
// literal, mirroring original_source/lisp.c's is_number().
func isNumber(tok string) bool {
	if tok == "" {
		return false
	}
	i := 0
	if tok[0] == '-' || tok[0] == '+' {
		i++
	}
	if i == len(tok) {
		return false
	}
	for ; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// ReadObject parses exactly one datum from the input and returns it.
// It returns (nil, io.EOF)-shaped behavior via a plain nil, nil pair
// when there is nothing left to read, so callers can loop with:
//
//	for {
//		form, err := rd.ReadObject()
//		if err != nil { ... }
//		if form == nil { break }
//		...
//	}
func (r *Reader) ReadObject() (*lartar.Value, error) {
	if r.atEOF() {
		return nil, nil
	}
	c := r.peek()
	switch c {
	case '(':
		r.advance()
		return r.readList()
	case ')':
		return nil, lartar.SyntaxError{Message: "unexpected `)`"}
	case '\'':
		r.advance()
		return r.readQuoted()
	default:
		return r.readAtom()
	}
}

func (r *Reader) readQuoted() (*lartar.Value, error) {
	inner, err := r.ReadObject()
	if err != nil {
		return nil, err
	}
	if inner == nil {
		return nil, lartar.SyntaxError{Message: "unexpected end of input after `'`"}
	}
	quoteSym, err := r.interp.Intern("quote")
	if err != nil {
		return nil, err
	}
	tail, err := r.interp.Cons(inner, r.interp.Nil())
	if err != nil {
		return nil, err
	}
	return r.interp.Cons(quoteSym, tail)
}

// readList parses the contents of a list up to and including its
// closing `)`, which must already be pending (the opening `(` has been
// consumed by the caller).
func (r *Reader) readList() (*lartar.Value, error) {
	r.skipWhitespace()
	if r.pos >= len(r.src) {
		return nil, lartar.SyntaxError{Message: "unterminated list"}
	}
	if r.peek() == ')' {
		r.advance()
		return r.interp.Nil(), nil
	}
	head, err := r.ReadObject()
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, lartar.SyntaxError{Message: "unterminated list"}
	}
	tail, err := r.readList()
	if err != nil {
		return nil, err
	}
	return r.interp.Cons(head, tail)
}

func (r *Reader) readAtom() (*lartar.Value, error) {
	tok, err := r.readToken()
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return nil, lartar.SyntaxError{Message: fmt.Sprintf("unexpected character `%c`", r.peek())}
	}
	if isNumber(tok) {
		var n int64
		_, err := fmt.Sscanf(tok, "%d", &n)
		if err != nil {
			return nil, lartar.SyntaxError{Message: fmt.Sprintf("malformed integer literal %q", tok)}
		}
		return r.interp.NewInt(n)
	}
	return r.interp.Intern(tok)
}

// ReadAll parses every remaining datum in the input and wraps them in
// a single (progn form...) value, so a whole program can be evaluated
// with one call to lartar.Eval against the top-level environment. Input
// with no datum at all reads as nil.
func (r *Reader) ReadAll() (*lartar.Value, error) {
	prognSym, err := r.interp.Intern("progn")
	if err != nil {
		return nil, err
	}
	var forms []*lartar.Value
	for {
		form, err := r.ReadObject()
		if err != nil {
			return nil, err
		}
		if form == nil {
			break
		}
		forms = append(forms, form)
	}
	if len(forms) == 0 {
		return r.interp.Nil(), nil
	}
	body := r.interp.Nil()
	for i := len(forms) - 1; i >= 0; i-- {
		body, err = r.interp.Cons(forms[i], body)
		if err != nil {
			return nil, err
		}
	}
	return r.interp.Cons(prognSym, body)
}
