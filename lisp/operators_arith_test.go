//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticIdentities(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(+)`:      `0`,
		`(*)`:      `1`,
		`(- 5)`:    `5`,
		`(/ 5)`:    `5`,
		`(- 5 2)`:  `3`,
		`(* 2 3 4)`: `24`,
	})
}

func TestArithmeticRequiresAtLeastOneArgument(t *testing.T) {
	env := Initialize()
	verifyEvalError(t, env, `(-)`, "Subtraction requires at least one argument")
	verifyEvalError(t, env, `(/)`, "Division requires at least one argument")
}

func TestArithmeticDivisionByZero(t *testing.T) {
	env := Initialize()
	verifyEvalError(t, env, `(/ 1 0)`, "Division by zero")
	verifyEvalError(t, env, `(/ 1 2 0)`, "Division by zero")
}

func TestArithmeticRejectsNonNumericOperand(t *testing.T) {
	env := Initialize()
	verifyEvalError(t, env, `(+ 1 (quote foo))`, "Invalid number")
	verifyEvalError(t, env, `(+ 1 "two")`, "Invalid number")
}

func TestArithmeticFloatContagion(t *testing.T) {
	env := Initialize()
	expr, perr := Read(`(* 2 2.5)`, env)
	require.Nil(t, perr)
	value, eerr := Eval(expr, env)
	require.Nil(t, eerr)
	require.Equal(t, Float(5), value)
}
