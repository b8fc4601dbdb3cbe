//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"fmt"
	"sync/atomic"
)

// registerControlOperators installs cond, not, and gensym.
func registerControlOperators(reg map[Symbol]OperatorFunc) {
	reg["cond"] = opCond
	reg["not"] = opNot
	reg["gensym"] = opGensym
}

// opCond evaluates each clause left to right. A one-element clause (expr)
// unconditionally returns expr evaluated — a deliberate departure from
// conventional Lisp (which would only take it if expr itself were
// truthy), preserved because it is the behavior the reference
// implementation's tests exercise. A two-element clause (test result)
// evaluates test; a truthy result evaluates and returns result, otherwise
// cond moves to the next clause. A failed test evaluation (an error) is
// swallowed and treated as falsy — the one place in the language where an
// error does not propagate.
func opCond(clauses []Expression, env *Environment) (Expression, *EvalError) {
	for _, clause := range clauses {
		list, ok := clause.(*List)
		if !ok {
			return nil, NewEvalError(ETypeMismatch, "Cond clause must be a list")
		}
		switch len(list.Items) {
		case 1:
			return Eval(list.Items[0], env)
		case 2:
			test, err := Eval(list.Items[0], env)
			if err != nil {
				continue
			}
			if IsTruthy(test) {
				return Eval(list.Items[1], env)
			}
		default:
			return nil, NewEvalError(EArity, "Each cond clause must have exactly one or two elements")
		}
	}
	return nil, NewEvalError(ECondNoMatch, "No true condition in cond")
}

// opNot is a special form: its argument is inspected, never evaluated.
// Because of this, an expression like (not (foo)) looks only at the
// literal list (foo) — which is always a non-empty list and therefore
// truthy, regardless of what calling foo would produce.
func opNot(args []Expression, env *Environment) (Expression, *EvalError) {
	if len(args) != 1 {
		return nil, NewEvalError(EArity, "not expects exactly one argument")
	}
	falsy := false
	switch v := args[0].(type) {
	case Symbol:
		falsy = v == "nil"
	case Integer:
		falsy = v == 0
	case *List:
		falsy = v.IsEmpty()
	}
	return boolExpr(falsy), nil
}

// gensymCounter is the process-wide monotonically increasing counter
// backing gensym; atomic because the interpreter is allowed to run
// gensym from more than one goroutine even though a single evaluation is
// always sequential.
var gensymCounter uint64

func opGensym(args []Expression, env *Environment) (Expression, *EvalError) {
	n := atomic.AddUint64(&gensymCounter, 1) - 1
	return Symbol(fmt.Sprintf("#:G%d", n)), nil
}
