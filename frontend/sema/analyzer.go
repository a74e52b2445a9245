package sema

import (
	"github.com/minic-lang/minic/frontend/ast"
	"github.com/minic-lang/minic/frontend/common"
)

// Analysis holds the state of one analysis run. The scope stack mirrors
// the lexical nesting depth of the node currently being visited; it is
// empty before the traversal starts and after it finishes.
type Analysis struct {
	Src    string
	Root   *Scope
	Errors []Error

	scopes common.Stack[*Scope]
}

// Analyze walks a syntactically valid translation unit, binds identifier
// references to declarations, and returns every semantic error found. A
// nil or empty result means the tree is valid; references are then
// annotated with their resolved symbols.
func Analyze(src string, tu *ast.TranslationUnit) []Error {
	a := &Analysis{Src: src}
	a.handleTranslationUnit(tu)
	return a.Errors
}

func (a *Analysis) scope() *Scope {
	top, _ := a.scopes.Peek()
	return top
}

func (a *Analysis) pushScope() *Scope {
	parent := a.scope()
	var child *Scope
	if parent == nil {
		child = NewScope(nil)
		a.Root = child
	} else {
		child = parent.Child()
	}
	a.scopes.Push(child)
	return child
}

func (a *Analysis) popScope() {
	a.scopes.Pop()
}

func (a *Analysis) errorAt(kind ErrorKind, ident string, span Span) {
	if span.Source == "" {
		span.Source = a.Src
	}
	a.Errors = append(a.Errors, Error{Kind: kind, Ident: ident, Span: span})
}

func (a *Analysis) declare(sym *ast.Symbol) {
	if err := a.scope().Declare(sym); err != nil {
		a.errorAt(ErrRedeclared, sym.Name, sym.Span())
	}
}
