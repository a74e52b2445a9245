package parser

import (
	"github.com/minic-lang/minic/frontend/ast"
	"github.com/minic-lang/minic/frontend/lexer"
)

func isTypeToken(t lexer.Token) bool {
	kw, ok := t.(lexer.TokKeyword)
	return ok && kw.Keyword.IsType()
}

func (p *parser) parseType() ast.Type {
	if !isTypeToken(p.Token) {
		p.failExpect("type name")
	}
	ty := ast.NewType(p.Token.AsString(), p.Token.Span())
	p.advance()
	return ty
}
