package lexer

import (
	"fmt"

	"github.com/minic-lang/minic/frontend/common"
	"github.com/minic-lang/minic/frontend/lexer/peekable"
)

// lexer is a hand-rolled, rune-based scanner.
type lexer struct {
	src                    string // source is the file being scanned
	chars                  *peekable.Chars
	curChr                 *rune
	line, column           uint32
	savedLine, savedColumn uint32
}

// Lex scans code into a token stream terminated by TokEOF. Scanning is a
// single forward pass; the first lexical error halts the stream.
func Lex(src, code string) ([]Token, *LexError) {
	var tokens []Token
	lx := newLexer(src, code)
	for {
		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if _, ok := tok.(TokEOF); ok {
			break
		}
	}
	return tokens, nil
}

func newLexer(src, code string) *lexer {
	chars := peekable.NewChars(code)
	lx := &lexer{
		src:    src,
		chars:  chars,
		curChr: chars.Next(),
		line:   1, column: 1,
		savedLine: 1, savedColumn: 1,
	}
	return lx
}

func (lx *lexer) currentSpan() common.Span {
	span := common.SpanNew(lx.savedLine, lx.line, lx.savedColumn, lx.column-1)
	span.Source = lx.src
	return span
}

func (lx *lexer) advance() {
	c := lx.curChr
	if c != nil {
		if *c == '\n' {
			lx.line++
			lx.column = 1
		} else {
			lx.column++
		}
	}
	lx.curChr = lx.chars.Next()
}

func (lx *lexer) peek() *rune {
	return lx.chars.Peek()
}

// error builds a LexError whose span starts at the current token's first
// character, so that e.g. an unterminated string points at its opening quote.
func (lx *lexer) error(msg string) *LexError {
	span := common.SpanNew(lx.savedLine, lx.line, lx.savedColumn, common.MaxUint32(lx.column-1, 1))
	span.Source = lx.src
	return &LexError{Msg: msg, Span: span}
}

// skipWs skips whitespace up to the next non-whitespace character.
func (lx *lexer) skipWs() {
	for {
		c := lx.curChr
		if !isWsChr(c) {
			break
		}
		lx.advance()
	}
	lx.savedLine = lx.line
	lx.savedColumn = lx.column
}

func (lx *lexer) nextToken() (Token, *LexError) {
	lastLine, lastColumn := lx.line, lx.column
	lx.skipWs()

	c := lx.curChr

	// EOF
	if c == nil {
		span := common.SpanNew(lastLine, lastLine, lastColumn, lastColumn)
		span.Source = lx.src
		return TokEOF{span: span}, nil
	}

	// Comments are consumed without emitting a token.
	if *c == '/' {
		if pC := lx.peek(); pC != nil {
			switch *pC {
			case '/':
				lx.lineComment()
				return lx.nextToken()
			case '*':
				if err := lx.blockComment(); err != nil {
					return nil, err
				}
				return lx.nextToken()
			}
		}
	}

	// Punctuation
	if token := lx.punct(c); token != nil {
		return token, nil
	}

	// String
	if token, err := lx.string(); err != nil {
		return nil, err
	} else if token != nil {
		return token, nil
	}

	// Char
	if token, err := lx.char(); err != nil {
		return nil, err
	} else if token != nil {
		return token, nil
	}

	// Number
	if token, err := lx.number(); err != nil {
		return nil, err
	} else if token != nil {
		return token, nil
	}

	// Identifier
	identTok, err := lx.identifier()
	if err != nil {
		return nil, err
	}

	// Keyword
	if keyword, ok := lookupKeyword(identTok.(TokIdent).Raw); ok {
		return newTokKeyword(keyword, identTok.Span()), nil
	}

	return identTok, nil
}

// punct scans a punctuation token with maximal munch: a two-character
// operator wins over its one-character prefix.
func (lx *lexer) punct(c *rune) Token {
	if c == nil {
		return nil
	}
	one := string(*c)
	// Two-character operators are tried first; `&&` and `||` have no
	// one-character fallback at all.
	if n := lx.peek(); n != nil {
		two := one + string(*n)
		if p, ok := puncts[two]; ok {
			lx.advance()
			lx.advance()
			return newTokPunct(p, lx.currentSpan())
		}
	}
	if p, ok := puncts[one]; ok {
		lx.advance()
		return newTokPunct(p, lx.currentSpan())
	}
	return nil
}

func (lx *lexer) unexpected(c rune) *LexError {
	return lx.error(fmt.Sprintf("unexpected character: %c", c))
}

func isChr(c *rune, e rune) bool {
	return c != nil && *c == e
}

func isWsChr(c *rune) bool {
	if c == nil {
		return false
	}
	switch *c {
	case ' ', '\t', '\n':
		return true
	default:
		return false
	}
}
