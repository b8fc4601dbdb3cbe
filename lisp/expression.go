//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package lisp implements the core read-eval loop of a small Lisp-family
// interpreter: a reader/parser, a macro expander with quasiquotation, an
// evaluator, and a three-namespace environment.
package lisp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expression is the universal value of the interpreter: every atom and
// every composite satisfies it. The concrete variants are Symbol, Integer,
// Float, String, *List, and *DottedPair, plus the internal *Macro variant
// that is never produced by the reader and never visible to user code.
type Expression interface {
	fmt.Stringer
	expression()
}

// Symbol is an identifier: a variable name, an operator name, or one of the
// boolean conventions (T/t true, nil/NIL the empty list).
type Symbol string

func (Symbol) expression() {}

// String returns the symbol's name verbatim.
func (s Symbol) String() string {
	return string(s)
}

// Integer is a signed 64-bit whole number.
type Integer int64

func (Integer) expression() {}

// String returns the decimal representation of the integer.
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Float is a 64-bit IEEE-754 floating point number.
type Float float64

func (Float) expression() {}

// String returns the decimal representation of the float. Go's default
// float formatting (shortest round-trippable form) is used rather than a
// fixed precision, which is why printing and re-reading a Float is subject
// to formatting variance (see spec's testable properties). A whole-number
// value such as 750 is given an explicit ".0": 'g' formatting alone would
// print it identically to the Integer 750, breaking both the spec's
// printed-form examples and the read(print(x)) = x round-trip (re-reading
// "750" yields an Integer, not a Float).
func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String is an opaque character sequence; it is never interpreted as code.
type String string

func (String) expression() {}

// String returns the quoted, escaped form of the string, e.g. `"a\"b"`.
func (s String) String() string {
	buf := new(bytes.Buffer)
	buf.WriteByte('"')
	for _, r := range string(s) {
		if r == '"' || r == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	buf.WriteByte('"')
	return buf.String()
}

// List is an ordered sequence of Expressions, possibly empty. List is
// always handled through a pointer so that the `eq` operator's identity
// semantics (§4.4: "two Lists compare by identity... the intent is object
// identity") reduce to ordinary pointer equality.
type List struct {
	Items []Expression
}

func (*List) expression() {}

// NewList constructs a List from the given items.
func NewList(items ...Expression) *List {
	return &List{Items: items}
}

// emptyList is the canonical empty list value returned wherever the
// interpreter needs "no elements" rather than "no value".
func emptyList() *List {
	return &List{Items: nil}
}

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool {
	return l == nil || len(l.Items) == 0
}

// String returns the list's printed form: "(e1 e2 ...)", or "()" when empty.
func (l *List) String() string {
	if l.IsEmpty() {
		return "()"
	}
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// DottedPair is the two-element structure (head . tail) produced when cons
// is called with a non-list second argument.
type DottedPair struct {
	Head Expression
	Tail Expression
}

func (*DottedPair) expression() {}

// String returns the pair's printed form: "(h . t)".
func (p *DottedPair) String() string {
	return "(" + p.Head.String() + " . " + p.Tail.String() + ")"
}

// Macro is the internal representation of a defmacro-defined rewrite rule.
// It is stored only in the Environment's macro table; the reader and
// evaluator never hand one back to user code.
type Macro struct {
	Params   []Symbol
	Template Expression
}

func (*Macro) expression() {}

// String returns the opaque placeholder "#<macro>"; macros are never printed
// by user programs so this exists mainly for debugging.
func (*Macro) String() string {
	return "#<macro>"
}

// floatEpsilon is the tolerance used when comparing two Floats for
// equality, per §4.4: "Float equality uses absolute difference < machine
// epsilon".
const floatEpsilon = 2.220446049250313e-16

// Equal reports whether two Expressions are structurally equal. Equality is
// recursive for composite variants; cross-variant comparisons are never
// equal. This is the general structural equality used by the reader/printer
// round-trip property; it is distinct from the `eq` operator, which uses
// identity rather than structure for Lists (see operators_compare.go).
func Equal(a, b Expression) bool {
	switch av := a.(type) {
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Integer:
		bv, ok := b.(Integer)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && math.Abs(float64(av-bv)) < floatEpsilon
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *DottedPair:
		bv, ok := b.(*DottedPair)
		return ok && Equal(av.Head, bv.Head) && Equal(av.Tail, bv.Tail)
	default:
		return false
	}
}

// IsTruthy reports whether an Expression counts as true under the
// interpreter's truthiness rules: the empty list and the symbols nil/NIL
// are the two canonical false values; everything else, including the
// integer 0, is true.
func IsTruthy(e Expression) bool {
	switch v := e.(type) {
	case *List:
		return !v.IsEmpty()
	case Symbol:
		return v != "nil" && v != "NIL"
	default:
		return true
	}
}
