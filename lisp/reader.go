//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "strconv"

// Read parses the first complete top-level form in text, expands any
// macro calls it contains, and returns the result. If text contains
// anything beyond that one form (other than trailing whitespace or
// comments), Read fails with "Unexpected input after list". Empty input
// (including input that is only whitespace and comments) is a legal form
// that yields the empty list.
//
// defmacro forms are intercepted here, not in Eval: reading one installs
// the macro into env's macro table and the form itself evaluates to the
// empty list, exactly as if nothing had been written.
func Read(text string, env *Environment) (Expression, *ParseError) {
	c := lex(text)
	t, ok := <-c
	if !ok {
		return emptyList(), nil
	}
	if t.typ == tokenEOF {
		return emptyList(), nil
	}
	expr, err := readForm(t, c, env)
	if err != nil {
		return nil, err
	}
	if trailing, ok := <-c; ok && trailing.typ != tokenEOF {
		return nil, NewParseError(EUnexpectedInput, "Unexpected input after list")
	}
	return expandTop(expr, env)
}

// readForm reads one complete form starting with the already-received
// token t, pulling further tokens from c as needed.
func readForm(t token, c chan token, env *Environment) (Expression, *ParseError) {
	switch t.typ {
	case tokenError:
		return nil, NewParseError(errorCodeFor(t.val), t.val)
	case tokenEOF:
		return nil, NewParseError(EUnexpectedEndOfList, "Unexpected end of list")
	case tokenOpenParen:
		return readList(c, env)
	case tokenCloseParen:
		return nil, NewParseError(EUnexpectedCloseParen, "Unexpected )")
	case tokenString:
		return String(unescapeString(t.val)), nil
	case tokenInteger:
		n, err := strconv.ParseInt(t.val, 10, 64)
		if err != nil {
			return nil, NewParseError(EInvalidNumber, "Invalid number")
		}
		return Integer(n), nil
	case tokenFloat:
		f, err := strconv.ParseFloat(t.val, 64)
		if err != nil {
			return nil, NewParseError(EInvalidFloat, "Invalid float")
		}
		return Float(f), nil
	case tokenQuoteMark:
		return readWrapped(Symbol("quote"), c, env)
	case tokenQuasiquoteMark:
		return readWrapped(Symbol("quasiquote"), c, env)
	case tokenUnquoteMark:
		return readWrapped(Symbol("unquote"), c, env)
	case tokenSymbol:
		return Symbol(t.val), nil
	default:
		return nil, NewParseError(EUnexpectedInput, "Unexpected input")
	}
}

// readWrapped reads the form following a reader-macro character and
// wraps it as (head form).
func readWrapped(head Symbol, c chan token, env *Environment) (Expression, *ParseError) {
	next, ok := <-c
	if !ok || next.typ == tokenEOF {
		return nil, NewParseError(EUnexpectedEndOfList, "Unexpected end of list")
	}
	inner, err := readForm(next, c, env)
	if err != nil {
		return nil, err
	}
	return NewList(head, inner), nil
}

// readList reads the elements of a list form up to its closing paren. If
// the completed list's first element is the symbol defmacro, it is not
// returned as a value at all: its remaining elements are taken as
// (name params body), a Macro is installed into env under name, and the
// empty list is returned in its place.
func readList(c chan token, env *Environment) (Expression, *ParseError) {
	var items []Expression
	for t := range c {
		if t.typ == tokenCloseParen {
			return finishList(items, env)
		}
		item, err := readForm(t, c, env)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return nil, NewParseError(EUnexpectedEndOfList, "Unexpected end of list")
}

func finishList(items []Expression, env *Environment) (Expression, *ParseError) {
	if len(items) > 0 {
		if head, ok := items[0].(Symbol); ok && head == "defmacro" {
			return readDefmacro(items, env)
		}
	}
	return NewList(items...), nil
}

// readDefmacro installs a macro from a (defmacro name (params...) body)
// form and returns the empty list.
func readDefmacro(items []Expression, env *Environment) (Expression, *ParseError) {
	if len(items) != 4 {
		return nil, NewParseError(EUnexpectedInput, "defmacro requires name, parameters, and body")
	}
	name, ok := items[1].(Symbol)
	if !ok {
		return nil, NewParseError(EUnexpectedInput, "defmacro name must be a symbol")
	}
	paramList, ok := items[2].(*List)
	if !ok {
		return nil, NewParseError(EUnexpectedInput, "defmacro parameters must be a list")
	}
	params := make([]Symbol, len(paramList.Items))
	for i, p := range paramList.Items {
		sym, ok := p.(Symbol)
		if !ok {
			return nil, NewParseError(EUnexpectedInput, "defmacro parameter name must be a symbol")
		}
		params[i] = sym
	}
	env.SetMacro(name, &Macro{Params: params, Template: items[3]})
	return emptyList(), nil
}

// errorCodeFor maps a lexer error message to the ParseError code that best
// describes it.
func errorCodeFor(msg string) ErrorCode {
	switch msg {
	case "Invalid float":
		return EInvalidFloat
	case "Unterminated string":
		return EUnterminatedString
	default:
		return EInvalidNumber
	}
}

// unescapeString resolves backslash escapes in a string token's raw
// content: a backslash makes the following character literal.
func unescapeString(s string) string {
	out := make([]rune, 0, len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			out = append(out, r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
