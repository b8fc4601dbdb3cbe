//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Environment owns three independent mappings, each from symbol name to
// Expression: values, function definitions, and macro definitions. No name
// ever shadows across tables — a lookup in one table never falls back to
// another.
//
// Function call introduces a cloned Environment (see Clone): the whole
// environment is value-copied rather than chained through a parent
// pointer, which makes user functions dynamically scoped relative to the
// call site's snapshot. This is a deliberate, preserved-for-compatibility
// design; see spec's design notes for the rationale.
type Environment struct {
	values    map[Symbol]Expression
	functions map[Symbol]Expression
	macros    map[Symbol]*Macro
}

// NewEnvironment returns an empty Environment with none of the built-in
// bindings. Most callers want Initialize instead.
func NewEnvironment() *Environment {
	return &Environment{
		values:    make(map[Symbol]Expression),
		functions: make(map[Symbol]Expression),
		macros:    make(map[Symbol]*Macro),
	}
}

// Initialize returns a fresh Environment preseeded with T, t, NIL, nil and
// with the primitive operator registry populated. Registration is
// idempotent (guarded by sync.Once in registry.go), so calling Initialize
// repeatedly within one process is safe.
func Initialize() *Environment {
	registerBuiltins()
	env := NewEnvironment()
	trueSym := Symbol("T")
	env.SetSymbol("T", trueSym)
	env.SetSymbol("t", trueSym)
	env.SetSymbol("NIL", emptyList())
	env.SetSymbol("nil", emptyList())
	return env
}

// GetSymbol looks up a value binding. The second return value is false if
// no such binding exists.
func (e *Environment) GetSymbol(name Symbol) (Expression, bool) {
	v, ok := e.values[name]
	return v, ok
}

// SetSymbol binds (or rebinds) a value in the value table.
func (e *Environment) SetSymbol(name Symbol, value Expression) {
	e.values[name] = value
}

// GetFunction looks up a function definition, stored as the canonical form
// (lambda (params...) body).
func (e *Environment) GetFunction(name Symbol) (Expression, bool) {
	v, ok := e.functions[name]
	return v, ok
}

// SetFunction binds (or rebinds) a function definition.
func (e *Environment) SetFunction(name Symbol, def Expression) {
	e.functions[name] = def
}

// GetMacro looks up a macro definition.
func (e *Environment) GetMacro(name Symbol) (*Macro, bool) {
	m, ok := e.macros[name]
	return m, ok
}

// SetMacro binds (or rebinds) a macro definition.
func (e *Environment) SetMacro(name Symbol, def *Macro) {
	e.macros[name] = def
}

// Clone returns a new Environment whose three tables are shallow copies of
// this one's: new map objects holding the same name→Expression bindings.
// Mutations made within the clone (new bindings, rebindings) never leak
// back to the environment it was cloned from. This is the sole mechanism
// by which a function call gets its own scope; there is no parent-pointer
// chain.
func (e *Environment) Clone() *Environment {
	clone := &Environment{
		values:    make(map[Symbol]Expression, len(e.values)),
		functions: make(map[Symbol]Expression, len(e.functions)),
		macros:    make(map[Symbol]*Macro, len(e.macros)),
	}
	for k, v := range e.values {
		clone.values[k] = v
	}
	for k, v := range e.functions {
		clone.functions[k] = v
	}
	for k, v := range e.macros {
		clone.macros[k] = v
	}
	return clone
}
