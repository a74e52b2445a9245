package lexer

// lineComment consumes a `//` comment up to (not including) the newline.
func (lx *lexer) lineComment() {
	lx.advance() // '/'
	lx.advance() // '/'
	for c := lx.curChr; c != nil && *c != '\n'; c = lx.curChr {
		lx.advance()
	}
}

// blockComment consumes a `/* ... */` comment, failing at EOF if the
// closing `*/` is never found.
func (lx *lexer) blockComment() *LexError {
	lx.advance() // '/'
	lx.advance() // '*'

	for c := lx.curChr; c != nil; c = lx.curChr {
		if *c == '*' {
			if p := lx.peek(); p != nil && *p == '/' {
				lx.advance()
				lx.advance()
				return nil
			}
		}
		lx.advance()
	}

	return lx.error("unterminated block comment")
}
