package parser

import (
	"fmt"

	"github.com/minic-lang/minic/frontend/ast"
	"github.com/minic-lang/minic/frontend/common"
	"github.com/minic-lang/minic/frontend/lexer"
)

type Span = common.Span

var SpanFrom = common.SpanFrom

type parser struct {
	TokenStream []lexer.Token
	Token       lexer.Token
	Pos         uint32
}

// Parse consumes a token stream (as produced by lexer.Lex, terminated by
// TokEOF) and returns the translation unit, or the syntax error that
// aborted the parse. Grammar rules fail by panicking with a *SyntaxError;
// the panic is recovered here so callers only ever see a return value.
func Parse(tkS []lexer.Token) (tu *ast.TranslationUnit, err *SyntaxError) {
	p := &parser{
		TokenStream: tkS,
		Token:       tkS[0],
		Pos:         0,
	}

	defer func() {
		if r := recover(); r != nil {
			tu = nil
			err = toSyntaxError(r)
		}
	}()

	tu = &ast.TranslationUnit{}
	for !lexer.IsEOF(p.Token) {
		tu.Decls = append(tu.Decls, p.parseDecl()...)
	}

	return
}

// advance moves the parser forward by one token.
func (p *parser) advance() {
	p.Pos = common.MinUint32(p.Pos+1, uint32(len(p.TokenStream)-1))
	p.Token = p.TokenStream[p.Pos]
}

func (p *parser) peek() lexer.Token {
	return p.peekOffset(+1)
}

// peekOffset returns the token at p.Pos + n, clamped to [0, len-1].
func (p *parser) peekOffset(n int) lexer.Token {
	idx := int(p.Pos) + n
	if idx < 0 {
		idx = 0
	} else if idx >= len(p.TokenStream) {
		idx = len(p.TokenStream) - 1
	}
	return p.TokenStream[idx]
}

// snapshot captures the parser position so a speculative probe can be
// rolled back. Probes are bounded: nothing past the probed tokens is
// consumed before the decision to keep or roll back.
type snapshot struct {
	pos uint32
}

func (p *parser) save() snapshot {
	return snapshot{pos: p.Pos}
}

func (p *parser) restore(s snapshot) {
	p.Pos = s.pos
	p.Token = p.TokenStream[p.Pos]
}

func (p *parser) tryConsume(s string) bool {
	if p.Token.Is(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(s string) {
	if !p.tryConsume(s) {
		p.failExpect(s)
	}
}

func (p *parser) expectIdentMsg(msg string) lexer.TokIdent {
	if i, ok := p.Token.(lexer.TokIdent); ok {
		p.advance()
		return i
	}
	p.failExpect(msg)
	panic("unreachable")
}

func (p *parser) expectIdent() lexer.TokIdent {
	return p.expectIdentMsg("identifier")
}

// fail aborts the parse with a plain message at the current token.
func (p *parser) fail(msg string) {
	p.failSpan(msg, p.span())
}

func (p *parser) failSpan(msg string, span Span) {
	panic(&SyntaxError{
		Msg:   msg,
		Found: p.Token.String(),
		Span:  span,
	})
}

// failExpect aborts the parse, naming the construct that was expected and
// the token actually found.
func (p *parser) failExpect(expected string) {
	panic(&SyntaxError{
		Msg:      fmt.Sprintf("expected %s, got: %s", expected, p.Token.String()),
		Expected: expected,
		Found:    p.Token.String(),
		Span:     p.span(),
	})
}

func (p *parser) spanN(n int) common.Span {
	return p.peekOffset(n).Span()
}

func (p *parser) span() common.Span {
	return p.spanN(0)
}

func (p *parser) prevSpan() common.Span {
	return p.spanN(-1)
}

func (p *parser) parseCommaSeparatedDelimited(
	closing string,
	parse func(*parser),
) {
	for !p.Token.Is(closing) {
		parse(p)
		if !p.tryConsume(",") {
			break
		}
	}
	p.expect(closing)
}
