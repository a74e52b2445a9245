// Package peekable provides a peekable rune iterator over a string.
package peekable

import (
	"unicode/utf8"
)

// Chars is a peekable iterator over a string.
// It normalises Windows line endings ("\r\n") into a single '\n' so that
// position tracking never sees a CR/LF pair.
type Chars struct {
	input   string
	pos     int
	width   int
	next    rune
	hasNext bool
}

// NewChars creates a new Chars iterator positioned at the first rune.
func NewChars(s string) *Chars {
	p := &Chars{input: s}
	p.advance()
	return p
}

// advance moves to the next rune. If the next two runes are "\r\n", they are
// consumed together and reported as a single '\n' whose width is the combined
// byte length of both runes.
func (p *Chars) advance() {
	if p.pos >= len(p.input) {
		p.hasNext = false
		p.next = 0
		p.width = 0
		return
	}

	r, w := utf8.DecodeRuneInString(p.input[p.pos:])

	if r == '\r' {
		nextPos := p.pos + w
		if nextPos < len(p.input) {
			r2, w2 := utf8.DecodeRuneInString(p.input[nextPos:])
			if r2 == '\n' {
				r = '\n'
				w += w2
			}
		}
	}

	p.next = r
	p.width = w
	p.hasNext = true
}

// Peek returns a copy of the next rune without consuming it.
// It returns nil if there is no next rune.
func (p *Chars) Peek() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	return &r
}

// Next consumes and returns a copy of the next rune.
// It returns nil if there is no next rune.
func (p *Chars) Next() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	p.pos += p.width
	p.advance()
	return &r
}
