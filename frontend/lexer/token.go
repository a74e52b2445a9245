package lexer

import (
	"github.com/minic-lang/minic/frontend/common"
)

type Token interface {
	isToken()
	Span() common.Span
	String() string
	Is(string) bool
	// AsString is used for keywords and punctuation, to make it easier to
	// switch on tokens for them.
	AsString() string
}
