package parser

import (
	"github.com/minic-lang/minic/frontend/ast"
)

// parseFuncRest parses a function declaration after the return type and
// name have been consumed: the parameter list and the body block.
func (p *parser) parseFuncRest(ret ast.Type, name ast.Ident, spanStart Span) *ast.FuncDecl {
	params := p.parseFuncParams()
	body := p.parseBlock()
	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewFuncDecl(name, ret, params, body, span)
}

func (p *parser) parseFuncParams() []ast.Param {
	p.expect("(")
	var params []ast.Param
	p.parseCommaSeparatedDelimited(")", func(p *parser) {
		ty := p.parseType()
		name := p.expectIdentMsg("parameter name")
		params = append(params, ast.NewParam(name, ty))
	})
	return params
}
