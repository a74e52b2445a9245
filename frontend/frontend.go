// Package frontend chains the three analysis stages: lexing, parsing and
// semantic analysis. Analyze is the single entry point; everything a caller
// needs to know about a source file comes back in the Result.
package frontend

import (
	"github.com/minic-lang/minic/frontend/lexer"
	"github.com/minic-lang/minic/frontend/parser"
	"github.com/minic-lang/minic/frontend/sema"
)

// Analyze runs code through the full pipeline. src names the source (a
// file path, usually) and only appears in spans and diagnostics. A lexical
// or syntax error stops the pipeline; semantic errors do not, so a Result
// may carry both a translation unit and a list of semantic errors.
func Analyze(src, code string) Result {
	tokens, lexErr := lexer.Lex(src, code)
	if lexErr != nil {
		return Result{LexErr: lexErr}
	}

	tu, synErr := parser.Parse(tokens)
	if synErr != nil {
		return Result{SynErr: synErr}
	}
	tu.Code = code

	return Result{TU: tu, SemErrs: sema.Analyze(src, tu)}
}
