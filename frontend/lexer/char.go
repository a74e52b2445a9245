package lexer

import (
	"github.com/minic-lang/minic/frontend/common"
)

// TokChar represents a character literal token.
type TokChar struct {
	Value rune
	span  common.Span
}

func (t TokChar) isToken() {}

func (t TokChar) Span() common.Span {
	return t.span
}

func (t TokChar) String() string {
	return string(t.Value)
}

func (t TokChar) Is(_ string) bool {
	return false
}

func (t TokChar) AsString() string {
	return ""
}

func NewTokChar(r rune, span common.Span) TokChar {
	return TokChar{Value: r, span: span}
}

/* Lexing */

// char scans a character literal: exactly one character (or escape
// sequence) between single quotes.
func (lx *lexer) char() (Token, *LexError) {
	if !isChr(lx.curChr, '\'') {
		return nil, nil
	}
	lx.advance() // consume the opening quote

	c := lx.curChr
	if c == nil || *c == '\n' {
		return nil, lx.error("unterminated char literal")
	}
	if *c == '\'' {
		lx.advance()
		return nil, lx.error("empty char literal")
	}

	var value rune
	if *c == '\\' {
		lx.advance() // consume '\'
		r, err := lx.escape()
		if err != nil {
			return nil, err
		}
		value = r
	} else {
		value = *c
		lx.advance()
	}

	if lx.curChr == nil || *lx.curChr == '\n' {
		return nil, lx.error("unterminated char literal")
	}
	if *lx.curChr != '\'' {
		return nil, lx.error("char literal may only contain one character")
	}
	lx.advance() // consume the closing quote

	return NewTokChar(value, lx.currentSpan()), nil
}
