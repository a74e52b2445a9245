package lexer

import (
	protocol "github.com/gluax-lang/lsp"
	"github.com/minic-lang/minic/frontend/common"
)

// LexError is fatal to the token stream: scanning halts at the failure
// point and no recovery is attempted.
type LexError struct {
	Msg  string
	Span common.Span
}

func (e *LexError) Error() string {
	return e.Msg
}

func (e *LexError) Diagnostic() *protocol.Diagnostic {
	return common.ErrorDiag(e.Msg, e.Span)
}
