package frontend

import (
	protocol "github.com/gluax-lang/lsp"
	"github.com/minic-lang/minic/frontend/ast"
	"github.com/minic-lang/minic/frontend/lexer"
	"github.com/minic-lang/minic/frontend/parser"
	"github.com/minic-lang/minic/frontend/sema"
)

// Result is the outcome of one Analyze call. Exactly one of the following
// holds: Ok() is true and TU is the validated tree, or LexErr is set, or
// SynErr is set, or SemErrs is non-empty (TU is still set in that case,
// with the references that did resolve annotated).
type Result struct {
	TU      *ast.TranslationUnit
	LexErr  *lexer.LexError
	SynErr  *parser.SyntaxError
	SemErrs []sema.Error
}

func (r Result) Ok() bool {
	return r.LexErr == nil && r.SynErr == nil && len(r.SemErrs) == 0
}

// Diagnostics flattens whatever went wrong into protocol diagnostics,
// in source order for semantic errors.
func (r Result) Diagnostics() []protocol.Diagnostic {
	switch {
	case r.LexErr != nil:
		return []protocol.Diagnostic{*r.LexErr.Diagnostic()}
	case r.SynErr != nil:
		return []protocol.Diagnostic{*r.SynErr.Diagnostic()}
	default:
		diags := make([]protocol.Diagnostic, 0, len(r.SemErrs))
		for _, e := range r.SemErrs {
			diags = append(diags, *e.Diagnostic())
		}
		return diags
	}
}
