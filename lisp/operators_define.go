//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// registerDefineOperators installs setf, defun, lambda, and progn.
func registerDefineOperators(reg map[Symbol]OperatorFunc) {
	reg["setf"] = opSetf
	reg["defun"] = opDefun
	reg["lambda"] = opLambda
	reg["progn"] = opProgn
}

func opSetf(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 2 {
		return nil, NewEvalError(EArity, "setf requires exactly two arguments")
	}
	name, ok := args[0].(Symbol)
	if !ok {
		return nil, NewEvalError(ETypeMismatch, "setf: first argument must be a symbol")
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.SetSymbol(name, value)
	return value, nil
}

// paramSymbols validates that expr is a List whose every element is a
// Symbol, returning that list of Symbols.
func paramSymbols(expr Expression, context string) ([]Symbol, *EvalError) {
	list, ok := expr.(*List)
	if !ok {
		return nil, NewEvalErrorf(ETypeMismatch, "%s parameters must be a list", context)
	}
	params := make([]Symbol, len(list.Items))
	for i, item := range list.Items {
		sym, ok := item.(Symbol)
		if !ok {
			return nil, NewEvalErrorf(ETypeMismatch, "%s parameter name must be a symbol", context)
		}
		params[i] = sym
	}
	return params, nil
}

// opDefun stores (lambda (params) body) under name in the function table
// and returns name, unevaluated in every position: the name is a bare
// Symbol, the parameter list is taken as written, and the body is stored
// without being evaluated now.
func opDefun(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 3 {
		return nil, NewEvalError(EArity, "defun requires exactly 3 arguments: name, params, body")
	}
	name, ok := args[0].(Symbol)
	if !ok {
		return nil, NewEvalError(ETypeMismatch, "Function name must be a symbol")
	}
	if _, err := paramSymbols(args[1], "defun"); err != nil {
		return nil, err
	}
	def := NewList(Symbol("lambda"), args[1], args[2])
	env.SetFunction(name, def)
	return name, nil
}

// opLambda builds the canonical (lambda (params) body) form and returns it
// verbatim; it is an inert data structure used for immediate application,
// not a closure, since it captures no environment.
func opLambda(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) < 2 {
		return nil, NewEvalError(EArity, "lambda requires a parameter list and at least one body expression")
	}
	if _, err := paramSymbols(args[0], "lambda"); err != nil {
		return nil, err
	}
	body := args[1]
	if len(args) > 2 {
		body = NewList(append([]Expression{Symbol("progn")}, args[1:]...)...)
	}
	return NewList(Symbol("lambda"), args[0], body), nil
}

func opProgn(args []Expression, env *Environment) (Expression, *EvalError) {
	var result Expression = emptyList()
	for _, arg := range args {
		v, err := Eval(arg, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
