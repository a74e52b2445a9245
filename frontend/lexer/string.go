package lexer

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/frontend/common"
)

// TokString represents a string literal token. Raw holds the unescaped
// content without the surrounding quotes.
type TokString struct {
	Raw  string
	span common.Span
}

func (t TokString) isToken() {}

func (t TokString) Span() common.Span {
	return t.span
}

func (t TokString) String() string {
	return t.Raw
}

func (t TokString) Is(_ string) bool {
	return false
}

func (t TokString) AsString() string {
	return ""
}

func NewTokString(s string, span common.Span) TokString {
	return TokString{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) string() (Token, *LexError) {
	if !isChr(lx.curChr, '"') {
		return nil, nil
	}
	lx.advance() // consume the opening quote

	var sb strings.Builder

	for {
		// A string literal must close on the same line it opened.
		if lx.curChr == nil || *lx.curChr == '\n' {
			return nil, lx.error("unterminated string literal")
		}

		if *lx.curChr == '"' {
			lx.advance() // consume the closing quote
			return NewTokString(sb.String(), lx.currentSpan()), nil
		}

		if *lx.curChr == '\\' {
			lx.advance() // consume '\'
			r, err := lx.escape()
			if err != nil {
				return nil, err
			}
			sb.WriteRune(r)
			continue
		}

		sb.WriteRune(*lx.curChr)
		lx.advance()
	}
}

// escape decodes a single escape sequence after the backslash has been
// consumed.
func (lx *lexer) escape() (rune, *LexError) {
	c := lx.curChr
	if c == nil {
		return 0, lx.error("unterminated escape sequence")
	}
	var r rune
	switch *c {
	case 'n':
		r = '\n'
	case 't':
		r = '\t'
	case 'r':
		r = '\r'
	case '0':
		r = 0
	case '\\':
		r = '\\'
	case '\'':
		r = '\''
	case '"':
		r = '"'
	default:
		return 0, lx.error(fmt.Sprintf("invalid escape sequence: \\%c", *c))
	}
	lx.advance()
	return r, nil
}
