package sema

import (
	"fmt"

	"github.com/minic-lang/minic/frontend/ast"
)

// Scope is one lexical region. Parent is a non-owning back-reference; the
// analyzer owns the whole tree for the duration of one pass and discards
// it afterward.
type Scope struct {
	Parent   *Scope
	Children []*Scope
	Symbols  map[string]*ast.Symbol
}

func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent:  parent,
		Symbols: make(map[string]*ast.Symbol),
	}
}

func (s *Scope) Child() *Scope {
	child := NewScope(s)
	s.Children = append(s.Children, child)
	return child
}

func (s *Scope) walkScopes(fn func(*Scope) bool) bool {
	current := s
	for current != nil {
		if fn(current) {
			return true
		}
		current = current.Parent
	}
	return false
}

// Declare binds sym in this scope. Only the same scope is checked for a
// duplicate: shadowing a name from an enclosing scope is legal.
func (s *Scope) Declare(sym *ast.Symbol) error {
	if _, ok := s.Symbols[sym.Name]; ok {
		return fmt.Errorf("duplicate definition of %s", sym.Name)
	}
	s.Symbols[sym.Name] = sym
	return nil
}

// Lookup resolves name by searching this scope, then each enclosing scope
// outward. It returns nil when no binding exists.
func (s *Scope) Lookup(name string) *ast.Symbol {
	var result *ast.Symbol
	s.walkScopes(func(scope *Scope) bool {
		if sym, ok := scope.Symbols[name]; ok {
			result = sym
			return true
		}
		return false
	})
	return result
}

// LookupLocal resolves name in this scope only.
func (s *Scope) LookupLocal(name string) *ast.Symbol {
	return s.Symbols[name]
}
