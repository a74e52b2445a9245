package ast

import "github.com/minic-lang/minic/frontend/lexer"

type Ident = lexer.TokIdent

// TranslationUnit is the root of the tree: the ordered top-level
// declarations of one source file.
type TranslationUnit struct {
	Decls []Decl
	Code  string
}
