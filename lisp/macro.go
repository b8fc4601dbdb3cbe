//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "fmt"

// expandTop runs macro expansion over a freshly read form and adapts any
// MacroError into the ParseError family, since Read's external contract
// (§6 of the design notes) only ever surfaces ParseError or EvalError to
// its caller.
func expandTop(expr Expression, env *Environment) (Expression, *ParseError) {
	expanded, err := expandMacros(expr, env)
	if err != nil {
		return nil, NewParseError(err.Code, err.Message)
	}
	return expanded, nil
}

// expandMacros recursively rewrites every macro call in expr, re-expanding
// a macro's substituted output so that a macro expanding to another macro
// call is itself handled.
func expandMacros(expr Expression, env *Environment) (Expression, *MacroError) {
	list, ok := expr.(*List)
	if !ok || list.IsEmpty() {
		return expr, nil
	}
	if head, ok := list.Items[0].(Symbol); ok {
		if m, found := env.GetMacro(head); found {
			expanded, err := expandMacroCall(m, list.Items[1:])
			if err != nil {
				return nil, err
			}
			return expandMacros(expanded, env)
		}
	}
	items := make([]Expression, len(list.Items))
	for i, item := range list.Items {
		e, err := expandMacros(item, env)
		if err != nil {
			return nil, err
		}
		items[i] = e
	}
	return NewList(items...), nil
}

// expandMacroCall substitutes a macro's call-site arguments into its
// template, without evaluating them: macro expansion is purely syntactic.
func expandMacroCall(m *Macro, args []Expression) (Expression, *MacroError) {
	if len(args) != len(m.Params) {
		return nil, NewMacroError(EMacroArity,
			fmt.Sprintf("macro expects %d argument(s), got %d", len(m.Params), len(args)))
	}
	subst := make(map[Symbol]Expression, len(m.Params))
	for i, p := range m.Params {
		subst[p] = args[i]
	}
	return substituteTemplate(m.Template, subst, false)
}

// substituteTemplate walks a macro template, replacing parameter symbols
// with their substituted call-site expressions. Outside quasiquote mode,
// every Symbol bound in subst is replaced; every List is substituted
// element-wise unless it is itself a (quasiquote X) form, which enters
// quasiquote mode for X. Inside quasiquote mode, (unquote X) splices
// subst[X] in place only when X is itself a substitution-bound symbol;
// any other sub-form, including a non-substituted unquote, is recursively
// quasi-expanded and keeps its wrapper. This package never implements
// unquote-splicing.
func substituteTemplate(expr Expression, subst map[Symbol]Expression, quasi bool) (Expression, *MacroError) {
	switch v := expr.(type) {
	case Symbol:
		if val, ok := subst[v]; ok {
			return val, nil
		}
		return v, nil
	case *List:
		if v.IsEmpty() {
			return v, nil
		}
		if head, ok := v.Items[0].(Symbol); ok {
			switch {
			case head == "quasiquote":
				if len(v.Items) != 2 {
					return nil, NewMacroError(EQuasiquoteArity, "quasiquote requires exactly one argument")
				}
				// There is no runtime quasiquote operator: quasiquote is purely a
				// template-substitution mode, fully resolved by the time expansion
				// finishes, so the wrapper is dropped rather than carried into
				// the expanded form.
				return substituteTemplate(v.Items[1], subst, true)
			case quasi && head == "unquote":
				if len(v.Items) != 2 {
					return nil, NewMacroError(EQuasiquoteArity, "unquote requires exactly one argument")
				}
				if sym, ok := v.Items[1].(Symbol); ok {
					if val, ok := subst[sym]; ok {
						return val, nil
					}
				}
				inner, err := substituteTemplate(v.Items[1], subst, true)
				if err != nil {
					return nil, err
				}
				return NewList(Symbol("unquote"), inner), nil
			}
		}
		items := make([]Expression, len(v.Items))
		for i, item := range v.Items {
			e, err := substituteTemplate(item, subst, quasi)
			if err != nil {
				return nil, err
			}
			items[i] = e
		}
		return NewList(items...), nil
	default:
		return expr, nil
	}
}
