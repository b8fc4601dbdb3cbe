//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "testing"

func TestSelfEvaluatingAtoms(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`42`:      `42`,
		`3.5`:     `3.5`,
		`"hi"`:    `"hi"`,
		`()`:      `()`,
		`(quote (1 2))`: `(1 2)`,
	})
}

func TestSymbolLookup(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(setf x 5)`: `5`,
	})
	verifyInterpret(t, env, map[string]string{
		`x`:          `5`,
	})
	verifyEvalError(t, env, `y`, "Undefined symbol: y")
}

func TestEvalArgsStopsAtFirstErrorWithoutSideEffects(t *testing.T) {
	env := Initialize()
	// the second argument to the lambda fails (undefined symbol), so the
	// third argument's setf must never run.
	expr, perr := Read(`((lambda (a b c) a) 1 bogus (setf sentinel 99))`, env)
	if perr != nil {
		t.Fatalf("Read failed: %v", perr)
	}
	_, evalErr := Eval(expr, env)
	if evalErr == nil {
		t.Fatalf("expected an evaluation error")
	}
	if _, ok := env.GetSymbol("sentinel"); ok {
		t.Fatalf("sentinel must not be bound: the setf after the failing argument must not run")
	}
}

func TestEvalListWithListHeadAppliesLambdaImmediately(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`((lambda (x) (* x 2)) 21)`: `42`,
	})
}

func TestEvalListWithNonOperatorAtomHeadIsAnError(t *testing.T) {
	env := Initialize()
	verifyEvalError(t, env, `(1 2 3)`, "Cannot evaluate a list without a valid operator")
}

func TestUserFunctionCallWithWrongArity(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(defun add (a b) (+ a b))`: `add`,
	})
	verifyEvalError(t, env, `(add 1)`, "Argument count mismatch")
}

func TestLambdaCallEnvironmentIsIsolatedFromCaller(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(setf x 1)`: `1`,
	})
	verifyInterpret(t, env, map[string]string{
		`((lambda (x) x) 99)`: `99`,
	})
	verifyInterpret(t, env, map[string]string{
		`x`:                   `1`,
	})
}
