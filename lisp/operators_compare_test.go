//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "testing"

func TestComparisonOperators(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(> 2 1)`:     `t`,
		`(> 1 2)`:     `()`,
		`(>= 2 2)`:    `t`,
		`(< 1 2)`:     `t`,
		`(<= 2 2)`:    `t`,
		`(gt 2 1)`:    `t`,
		`(lt 1 2)`:    `t`,
		`(gte 2 2)`:   `t`,
		`(lte 2 2)`:   `t`,
		`(> 2 1.5)`:   `t`,
		`(< 1.5 2)`:   `t`,
	})
}

func TestComparisonArity(t *testing.T) {
	env := Initialize()
	verifyEvalError(t, env, `(> 1)`, "expects exactly two arguments")
	verifyEvalError(t, env, `(eq 1)`, "expects exactly two arguments")
}

func TestComparisonTypeMismatch(t *testing.T) {
	env := Initialize()
	verifyEvalError(t, env, `(> 1 (quote a))`, "must be numbers")
}

func TestEqNumericByValueAcrossTypes(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(eq 2 2)`:   `t`,
		`(eq 2 2.0)`: `t`,
		`(eq 2 3)`:   `()`,
		`(ne 2 3)`:   `t`,
	})
}

func TestEqSymbolByName(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(eq (quote foo) (quote foo))`: `t`,
		`(eq (quote foo) (quote bar))`: `()`,
	})
}

// eq on lists is identity, not structural equality: two separately
// quoted but structurally-equal lists are not eq.
func TestEqListsByIdentityNotStructure(t *testing.T) {
	env := Initialize()
	verifyInterpret(t, env, map[string]string{
		`(eq (quote (1 2)) (quote (1 2)))`: `()`,
	})
	setfExpr, perr := Read(`(setf a (quote (1 2)))`, env)
	if perr != nil {
		t.Fatalf("Read failed: %v", perr)
	}
	if _, eerr := Eval(setfExpr, env); eerr != nil {
		t.Fatalf("Eval failed: %v", eerr)
	}
	expr, perr := Read(`(eq a a)`, env)
	if perr != nil {
		t.Fatalf("Read failed: %v", perr)
	}
	value, eerr := Eval(expr, env)
	if eerr != nil {
		t.Fatalf("Eval failed: %v", eerr)
	}
	if value.String() != "t" {
		t.Fatalf("expected the same binding to be eq to itself, got %s", value.String())
	}
}
