// File: environment.go
// Title: SBML Global Environment
// Description: Single flat name-to-value mapping shared by every statement
//              of a run. Blocks, if and while bodies do not open scopes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package executor

import (
	"sort"

	"github.com/msto63/sbml/foundation/sbml/value"
)

// Environment maps variable names to runtime values. It is not safe for
// concurrent use; each run owns its environment.
type Environment struct {
	vars map[string]value.Value
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// Get returns the value bound to name
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v, replacing any previous binding
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Names returns the bound names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings
func (e *Environment) Len() int {
	return len(e.vars)
}
