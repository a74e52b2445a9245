package sema

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
	"github.com/minic-lang/minic/frontend/common"
)

type ErrorKind uint8

const (
	_ ErrorKind = iota
	// ErrUndeclared is a reference to a name with no binding in any
	// enclosing scope.
	ErrUndeclared
	// ErrRedeclared is a declaration of a name that already exists in the
	// same scope. Shadowing an outer scope is not an error.
	ErrRedeclared
	// ErrAssignConst is an assignment to a `const` variable.
	ErrAssignConst
	// ErrNotAFunction is a call whose callee is not bound to a function.
	ErrNotAFunction
	// ErrFuncAsValue is a function name used as a plain value.
	ErrFuncAsValue
	// ErrArity is a call with the wrong number of arguments.
	ErrArity
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUndeclared:
		return "undeclared"
	case ErrRedeclared:
		return "redeclared"
	case ErrAssignConst:
		return "assign-to-const"
	case ErrNotAFunction:
		return "not-a-function"
	case ErrFuncAsValue:
		return "function-as-value"
	case ErrArity:
		return "arity-mismatch"
	default:
		panic("unreachable")
	}
}

// Error is one semantic finding. Unlike lexical and syntax errors these are
// not fatal: the analyzer accumulates every Error it finds in one traversal.
type Error struct {
	Kind  ErrorKind
	Ident string
	Span  common.Span
}

func (e Error) Error() string {
	switch e.Kind {
	case ErrUndeclared:
		return fmt.Sprintf("use of undeclared identifier '%s'", e.Ident)
	case ErrRedeclared:
		return fmt.Sprintf("redeclaration of '%s'", e.Ident)
	case ErrAssignConst:
		return fmt.Sprintf("assignment to const variable '%s'", e.Ident)
	case ErrNotAFunction:
		return fmt.Sprintf("'%s' is not a function", e.Ident)
	case ErrFuncAsValue:
		return fmt.Sprintf("function '%s' used as value", e.Ident)
	case ErrArity:
		return fmt.Sprintf("wrong number of arguments in call to '%s'", e.Ident)
	default:
		panic("unreachable")
	}
}

func (e Error) Diagnostic() *protocol.Diagnostic {
	return common.ErrorDiag(e.Error(), e.Span)
}
