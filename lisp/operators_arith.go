//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "github.com/spf13/cast"

// registerArithmeticOperators installs +, -, *, and /.
//
// Every argument is evaluated. The running total is always carried as a
// float64 (via cast.ToFloat64E, which rejects anything that isn't already
// an Integer or Float with "Invalid number"); whether the final value is
// handed back as Integer or Float depends only on whether any operand was
// a Float or the accumulated result has a nonzero fractional part — not on
// the operand types alone, which is why `(/ 3 2)` is the Float 1.5 even
// though both operands are Integer.
func registerArithmeticOperators(reg map[Symbol]OperatorFunc) {
	reg["+"] = opAdd
	reg["-"] = opSubtract
	reg["*"] = opMultiply
	reg["/"] = opDivide
}

// numericOperand evaluates expr and returns its value as a float64, along
// with whether it was a Float (as opposed to an Integer).
func numericOperand(expr Expression, env *Environment) (float64, bool, *EvalError) {
	v, err := Eval(expr, env)
	if err != nil {
		return 0, false, err
	}
	switch n := v.(type) {
	case Integer:
		return float64(n), false, nil
	case Float:
		return float64(n), true, nil
	default:
		f, cerr := cast.ToFloat64E(v)
		if cerr != nil {
			return 0, false, NewEvalError(ETypeMismatch, "Invalid number")
		}
		return f, false, nil
	}
}

// numericResult converts an accumulated float64 back to an Integer when no
// operand was a Float and the value carries no fractional part, or a Float
// otherwise.
func numericResult(value float64, hasFloat bool) Expression {
	if hasFloat || value != float64(int64(value)) {
		return Float(value)
	}
	return Integer(int64(value))
}

func opAdd(args []Expression, env *Environment) (Expression, *EvalError) {
	var sum float64
	var hasFloat bool
	for _, arg := range args {
		v, isFloat, err := numericOperand(arg, env)
		if err != nil {
			return nil, err
		}
		sum += v
		hasFloat = hasFloat || isFloat
	}
	return numericResult(sum, hasFloat), nil
}

func opSubtract(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) == 0 {
		return nil, NewEvalError(EArity, "Subtraction requires at least one argument")
	}
	result, hasFloat, err := numericOperand(args[0], env)
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		v, isFloat, err := numericOperand(arg, env)
		if err != nil {
			return nil, err
		}
		result -= v
		hasFloat = hasFloat || isFloat
	}
	return numericResult(result, hasFloat), nil
}

func opMultiply(args []Expression, env *Environment) (Expression, *EvalError) {
	product := 1.0
	var hasFloat bool
	for _, arg := range args {
		v, isFloat, err := numericOperand(arg, env)
		if err != nil {
			return nil, err
		}
		product *= v
		hasFloat = hasFloat || isFloat
	}
	return numericResult(product, hasFloat), nil
}

func opDivide(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) == 0 {
		return nil, NewEvalError(EArity, "Division requires at least one argument")
	}
	result, hasFloat, err := numericOperand(args[0], env)
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		v, isFloat, err := numericOperand(arg, env)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return nil, NewEvalError(EDivisionByZero, "Division by zero")
		}
		result /= v
		hasFloat = hasFloat || isFloat
	}
	return numericResult(result, hasFloat), nil
}
