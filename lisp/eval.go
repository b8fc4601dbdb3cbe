//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Eval evaluates a single Expression in env, returning its value or the
// first error encountered. Atoms other than Symbol self-evaluate; Symbol
// looks itself up in the value table; a non-empty List dispatches on its
// head, per the four cases below.
func Eval(expr Expression, env *Environment) (Expression, *EvalError) {
	switch v := expr.(type) {
	case Integer, Float, String:
		return expr, nil
	case Symbol:
		if val, ok := env.GetSymbol(v); ok {
			return val, nil
		}
		return nil, NewEvalErrorf(EUndefinedSymbol, "Undefined symbol: %s", v)
	case *List:
		if v.IsEmpty() {
			return v, nil
		}
		return evalList(v, env)
	default:
		return expr, nil
	}
}

func evalList(list *List, env *Environment) (Expression, *EvalError) {
	switch head := list.Items[0].(type) {
	case Symbol:
		if op, ok := lookupOperator(head); ok {
			return op(list.Items[1:], env)
		}
		def, ok := env.GetFunction(head)
		if !ok {
			return nil, NewEvalErrorf(EUndefinedFunction, "Undefined function: %s", head)
		}
		params, body, ok := asLambda(def)
		if !ok {
			return nil, NewEvalError(EInvalidFunction, "Invalid function definition")
		}
		return callLambda(params, body, list.Items[1:], env)
	case *List:
		fn, err := Eval(head, env)
		if err != nil {
			return nil, err
		}
		params, body, ok := asLambda(fn)
		if !ok {
			return nil, NewEvalError(ENotApplicable, "Invalid function call")
		}
		return callLambda(params, body, list.Items[1:], env)
	default:
		return nil, NewEvalError(ENotApplicable, "Cannot evaluate a list without a valid operator")
	}
}

// asLambda reports whether def is the canonical (lambda (params...) body)
// form, returning its parameter symbols and body when it is.
func asLambda(def Expression) ([]Symbol, Expression, bool) {
	lambdaList, ok := def.(*List)
	if !ok || len(lambdaList.Items) != 3 {
		return nil, nil, false
	}
	head, ok := lambdaList.Items[0].(Symbol)
	if !ok || head != "lambda" {
		return nil, nil, false
	}
	paramList, ok := lambdaList.Items[1].(*List)
	if !ok {
		return nil, nil, false
	}
	params := make([]Symbol, len(paramList.Items))
	for i, p := range paramList.Items {
		sym, ok := p.(Symbol)
		if !ok {
			return nil, nil, false
		}
		params[i] = sym
	}
	return params, lambdaList.Items[2], true
}

// callLambda evaluates args in env, binds them to params in a clone of
// env, and evaluates body in that clone. There is no closure over env
// beyond this one call: a lambda's body only ever sees the caller's
// snapshot, never its own defining scope (see Environment.Clone).
func callLambda(params []Symbol, body Expression, args []Expression, env *Environment) (Expression, *EvalError) {
	if len(params) != len(args) {
		return nil, NewEvalErrorf(EArity, "Argument count mismatch: expected %d, got %d", len(params), len(args))
	}
	values, err := evalArgs(args, env)
	if err != nil {
		return nil, err
	}
	callEnv := env.Clone()
	for i, p := range params {
		callEnv.SetSymbol(p, values[i])
	}
	return Eval(body, callEnv)
}

// evalArgs evaluates each argument expression in order, left to right,
// per the spec's strictly left-to-right depth-first evaluation order
// (which user-visible side effects such as setf and gensym depend on),
// stopping at the first error without evaluating the remaining arguments.
func evalArgs(args []Expression, env *Environment) ([]Expression, *EvalError) {
	values := make([]Expression, 0, len(args))
	for _, arg := range args {
		v, err := Eval(arg, env)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
