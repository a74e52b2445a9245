package lexer

import (
	"strings"

	"github.com/minic-lang/minic/frontend/common"
)

// TokInt represents an integer literal token.
type TokInt struct {
	Raw  string
	span common.Span
}

func (t TokInt) isToken() {}

func (t TokInt) Span() common.Span {
	return t.span
}

func (t TokInt) String() string {
	return t.Raw
}

func (t TokInt) Is(_ string) bool {
	return false
}

func (t TokInt) AsString() string {
	return ""
}

func NewTokInt(s string, span common.Span) TokInt {
	return TokInt{Raw: s, span: span}
}

// TokFloat represents a floating-point literal token.
type TokFloat struct {
	Raw  string
	span common.Span
}

func (t TokFloat) isToken() {}

func (t TokFloat) Span() common.Span {
	return t.span
}

func (t TokFloat) String() string {
	return t.Raw
}

func (t TokFloat) Is(_ string) bool {
	return false
}

func (t TokFloat) AsString() string {
	return ""
}

func NewTokFloat(s string, span common.Span) TokFloat {
	return TokFloat{Raw: s, span: span}
}

/* Lexing */

// number scans an integer or float literal. A float is digits, a dot, then
// at least one digit. A literal immediately followed by an identifier
// character (e.g. `123abc`) or a dot with no following digit (`1.`) is
// malformed.
func (lx *lexer) number() (Token, *LexError) {
	if !isAsciiDigit(lx.curChr) {
		return nil, nil
	}

	var sb strings.Builder
	for c := lx.curChr; isAsciiDigit(c); c = lx.curChr {
		sb.WriteRune(*c)
		lx.advance()
	}

	isFloat := false
	if isChr(lx.curChr, '.') && isAsciiDigit(lx.peek()) {
		isFloat = true
		sb.WriteRune(*lx.curChr)
		lx.advance() // consume '.'
		for c := lx.curChr; isAsciiDigit(c); c = lx.curChr {
			sb.WriteRune(*c)
			lx.advance()
		}
	} else if isChr(lx.curChr, '.') {
		lx.advance()
		return nil, lx.error("malformed number literal: expected digit after '.'")
	}

	if c := lx.curChr; c != nil && isIdentStart(*c) {
		return nil, lx.error("malformed number literal: " + sb.String() + string(*c))
	}

	if isFloat {
		return NewTokFloat(sb.String(), lx.currentSpan()), nil
	}
	return NewTokInt(sb.String(), lx.currentSpan()), nil
}

func isAsciiDigit(c *rune) bool {
	return c != nil && '0' <= *c && *c <= '9'
}
