//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "math"

// registerComparisonOperators installs >, <, >=, <=, eq, ne, and the
// long-name aliases gt, lt, gte, lte.
func registerComparisonOperators(reg map[Symbol]OperatorFunc) {
	reg[">"] = opGreater
	reg["gt"] = opGreater
	reg[">="] = opGreaterEqual
	reg["gte"] = opGreaterEqual
	reg["<"] = opLess
	reg["lt"] = opLess
	reg["<="] = opLessEqual
	reg["lte"] = opLessEqual
	reg["eq"] = opEq
	reg["ne"] = opNe
}

// symbolTrue and symbolFalse are the two boolean return conventions used by
// every comparison operator.
var (
	symbolTrue  Expression = Symbol("t")
	symbolFalse Expression = emptyList()
)

func boolExpr(b bool) Expression {
	if b {
		return symbolTrue
	}
	return symbolFalse
}

// orderedOperands evaluates both arguments of a two-argument ordered
// comparison and coerces them to float64; Integer and Float operands may be
// mixed freely, anything else is a type error.
func orderedOperands(name string, args []Expression, env *Environment) (float64, float64, *EvalError) {
	if len(args) != 2 {
		return 0, 0, NewEvalErrorf(EArity, "`%s` expects exactly two arguments", name)
	}
	left, err := Eval(args[0], env)
	if err != nil {
		return 0, 0, err
	}
	right, err := Eval(args[1], env)
	if err != nil {
		return 0, 0, err
	}
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return 0, 0, NewEvalErrorf(ETypeMismatch, "`%s` arguments must be numbers", name)
	}
	return lf, rf, nil
}

func asFloat(e Expression) (float64, bool) {
	switch v := e.(type) {
	case Integer:
		return float64(v), true
	case Float:
		return float64(v), true
	default:
		return 0, false
	}
}

func opGreater(args []Expression, env *Environment) (Expression, *EvalError) {
	l, r, err := orderedOperands(">", args, env)
	if err != nil {
		return nil, err
	}
	return boolExpr(l > r), nil
}

func opGreaterEqual(args []Expression, env *Environment) (Expression, *EvalError) {
	l, r, err := orderedOperands(">=", args, env)
	if err != nil {
		return nil, err
	}
	return boolExpr(l >= r), nil
}

func opLess(args []Expression, env *Environment) (Expression, *EvalError) {
	l, r, err := orderedOperands("<", args, env)
	if err != nil {
		return nil, err
	}
	return boolExpr(l < r), nil
}

func opLessEqual(args []Expression, env *Environment) (Expression, *EvalError) {
	l, r, err := orderedOperands("<=", args, env)
	if err != nil {
		return nil, err
	}
	return boolExpr(l <= r), nil
}

// valuesEq implements the `eq` identity/value rule: numbers compare by
// value (Float equality within floatEpsilon), Symbols compare by name,
// Lists compare by identity (the same underlying *List, not merely
// structurally equal lists) — anything else, or a type mismatch between
// the two operands, is simply not equal rather than an error.
func valuesEq(left, right Expression) bool {
	switch l := left.(type) {
	case Integer:
		switch r := right.(type) {
		case Integer:
			return l == r
		case Float:
			return math.Abs(float64(l)-float64(r)) < floatEpsilon
		default:
			return false
		}
	case Float:
		switch r := right.(type) {
		case Integer:
			return math.Abs(float64(l)-float64(r)) < floatEpsilon
		case Float:
			return math.Abs(float64(l-r)) < floatEpsilon
		default:
			return false
		}
	case Symbol:
		r, ok := right.(Symbol)
		return ok && l == r
	case *List:
		r, ok := right.(*List)
		return ok && l == r
	default:
		return false
	}
}

func opEq(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 2 {
		return nil, NewEvalError(EArity, "`eq` expects exactly two arguments")
	}
	left, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	right, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	return boolExpr(valuesEq(left, right)), nil
}

func opNe(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 2 {
		return nil, NewEvalError(EArity, "`ne` expects exactly two arguments")
	}
	left, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	right, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	return boolExpr(!valuesEq(left, right)), nil
}
