//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, text string) Expression {
	t.Helper()
	env := Initialize()
	expr, err := Read(text, env)
	require.Nil(t, err, "Read(%q): %v", text, err)
	return expr
}

func TestReadAtoms(t *testing.T) {
	cases := []struct {
		text string
		want Expression
	}{
		{"42", Integer(42)},
		{"-42", Integer(-42)},
		{"3.14", Float(3.14)},
		{"-3.14", Float(-3.14)},
		{"- ", Symbol("-")},
		{"-abc", Symbol("-abc")},
		{"foo", Symbol("foo")},
		{`"hello"`, String("hello")},
		{`"a\"b"`, String(`a"b`)},
		{"", emptyList()},
		{"   ; just a comment\n", emptyList()},
	}
	for _, c := range cases {
		got := mustRead(t, c.text)
		if diff := cmp.Diff(c.want, got, cmp.Comparer(Equal)); diff != "" {
			t.Errorf("Read(%q) mismatch (-want +got):\n%s", c.text, diff)
		}
	}
}

func TestReadList(t *testing.T) {
	got := mustRead(t, "(1 2 3)")
	want := NewList(Integer(1), Integer(2), Integer(3))
	assert.True(t, Equal(want, got))
}

func TestReadQuoteForms(t *testing.T) {
	assert.True(t, Equal(NewList(Symbol("quote"), Symbol("a")), mustRead(t, "'a")))
	assert.True(t, Equal(NewList(Symbol("quasiquote"), Symbol("a")), mustRead(t, "`a")))
	assert.True(t, Equal(NewList(Symbol("unquote"), Symbol("a")), mustRead(t, ",a")))
}

func TestReadErrors(t *testing.T) {
	env := Initialize()
	cases := []struct {
		text string
		want string
	}{
		{"(+ 1 2", "Unexpected end of list"},
		{"(+ 1 2))", "Unexpected input after list"},
		{"1.2.3", "Invalid float"},
		{"12abc", "Invalid number"},
		{`"unterminated`, "Unterminated string"},
	}
	for _, c := range cases {
		_, err := Read(c.text, env)
		require.NotNil(t, err, "Read(%q) should have failed", c.text)
		assert.Contains(t, err.Error(), c.want)
	}
}

func TestReadMinusEOF(t *testing.T) {
	env := Initialize()
	_, err := Read("(-", env)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Invalid number")
}

func TestDefmacroInstallsAndYieldsEmptyList(t *testing.T) {
	env := Initialize()
	got, err := Read("(defmacro double (x) (+ x x))", env)
	require.Nil(t, err)
	assert.True(t, got.(*List).IsEmpty())

	m, ok := env.GetMacro("double")
	require.True(t, ok)
	assert.Equal(t, []Symbol{"x"}, m.Params)
}

func TestRoundTripPrintRead(t *testing.T) {
	forms := []string{"42", "-7", "foo", `"a string"`, "(1 2 (3 4))"}
	for _, f := range forms {
		expr := mustRead(t, f)
		reread := mustRead(t, expr.String())
		assert.True(t, Equal(expr, reread), "round-trip of %q via %q", f, expr.String())
	}
}
