package lexer

import (
	"strings"

	"github.com/minic-lang/minic/frontend/common"
)

type TokIdent struct {
	Raw  string
	span common.Span
}

func (t TokIdent) isToken() {}

func (t TokIdent) Span() common.Span {
	return t.span
}

func (t TokIdent) String() string {
	return t.Raw
}

func (t TokIdent) Is(_ string) bool {
	return false
}

func (t TokIdent) AsString() string {
	return ""
}

func NewTokIdent(s string, span common.Span) TokIdent {
	return TokIdent{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) identifier() (Token, *LexError) {
	var sb strings.Builder

	if !isIdentStart(*lx.curChr) {
		return nil, lx.unexpected(*lx.curChr)
	}

	sb.WriteRune(*lx.curChr)
	lx.advance()

	for c := lx.curChr; c != nil && isIdentContinue(*c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}

	return NewTokIdent(sb.String(), lx.currentSpan()), nil
}

// Identifiers follow the C rule: an ASCII letter or underscore, then
// letters, digits and underscores.
func isIdentStart(r rune) bool {
	if ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') {
		return true
	}
	return r == '_'
}

func isIdentContinue(r rune) bool {
	if '0' <= r && r <= '9' {
		return true
	}
	return isIdentStart(r)
}
