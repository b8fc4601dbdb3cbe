//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "github.com/samber/lo"

// registerListOperators installs quote, car, cdr, cons, and length.
func registerListOperators(reg map[Symbol]OperatorFunc) {
	reg["quote"] = opQuote
	reg["car"] = opCar
	reg["cdr"] = opCdr
	reg["cons"] = opCons
	reg["length"] = opLength
}

// opQuote is a special form: its one argument is returned verbatim,
// without evaluation.
func opQuote(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 1 {
		return nil, NewEvalError(EArity, "quote requires exactly one argument")
	}
	return args[0], nil
}

func opCar(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 1 {
		return nil, NewEvalError(EArity, "car requires exactly one argument")
	}
	v, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	list, ok := v.(*List)
	if !ok {
		return nil, NewEvalError(ETypeMismatch, "car: argument must be a list")
	}
	if list.IsEmpty() {
		return emptyList(), nil
	}
	return list.Items[0], nil
}

func opCdr(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 1 {
		return nil, NewEvalError(EArity, "cdr requires exactly one argument")
	}
	v, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	list, ok := v.(*List)
	if !ok {
		return nil, NewEvalError(ETypeMismatch, "cdr: argument must be a list")
	}
	if len(list.Items) <= 1 {
		return emptyList(), nil
	}
	return NewList(lo.Slice(list.Items, 1, len(list.Items))...), nil
}

func opCons(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 2 {
		return nil, NewEvalError(EArity, "cons requires exactly two arguments")
	}
	first, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	second, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if list, ok := second.(*List); ok {
		items := append([]Expression{first}, list.Items...)
		return NewList(items...), nil
	}
	return &DottedPair{Head: first, Tail: second}, nil
}

func opLength(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 1 {
		return nil, NewEvalError(EArity, "length requires exactly one argument")
	}
	v, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	list, ok := v.(*List)
	if !ok {
		return nil, NewEvalError(ETypeMismatch, "length: argument is not a list")
	}
	return Integer(len(list.Items)), nil
}
