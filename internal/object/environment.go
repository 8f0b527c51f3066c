package object

import (
	"log/slog"
	"sort"
	"sync/atomic"
)

var nextID atomic.Uint64

// Environment is one scope in a chain. Scopes are linked by reference, so
// a binding added to an ancestor after a closure captured it is visible to
// that closure.
type Environment struct {
	ID       uint64
	Bindings map[string]Expr
	Outer    *Environment
}

func nextEnvID() uint64 {
	return nextID.Add(1)
}

func NewEnvironment() *Environment {
	return &Environment{
		ID:       nextEnvID(),
		Bindings: make(map[string]Expr),
	}
}

// NewEnclosedEnvironment creates an empty scope whose parent is outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.Outer = outer
	slog.Debug("new env",
		slog.Uint64("id", env.ID),
		slog.Uint64("outer", outer.ID))
	return env
}

// NewRootEnvironment creates a global scope holding the given builtins.
func NewRootEnvironment(builtins map[string]*Procedure) *Environment {
	env := NewEnvironment()
	for name, proc := range builtins {
		env.Bindings[name] = proc
	}
	slog.Debug("new root env",
		slog.Uint64("id", env.ID),
		slog.Int("builtins", len(builtins)))
	return env
}

func (e *Environment) Lookup(name string) (Expr, bool) {
	for scope := e; scope != nil; scope = scope.Outer {
		if val, ok := scope.Bindings[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// Assign binds name in this scope only; a binding of the same name in an
// outer scope is shadowed, never overwritten.
func (e *Environment) Assign(name string, val Expr) {
	e.Bindings[name] = val
}

// Names returns every name visible from this scope, sorted, each once.
func (e *Environment) Names() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for scope := e; scope != nil; scope = scope.Outer {
		for name := range scope.Bindings {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
