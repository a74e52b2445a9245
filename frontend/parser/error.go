package parser

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
	"github.com/minic-lang/minic/frontend/common"
)

// SyntaxError is fatal to the parse: the first unexpected token aborts the
// whole run, there is no error-tolerant AST.
type SyntaxError struct {
	Msg      string
	Expected string // grammar construct the parser was looking for, if any
	Found    string // token actually seen
	Span     common.Span
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

func (e *SyntaxError) Diagnostic() *protocol.Diagnostic {
	return common.ErrorDiag(e.Msg, e.Span)
}

func toSyntaxError(err any) *SyntaxError {
	switch err := err.(type) {
	case *SyntaxError:
		return err
	default:
		panic(fmt.Errorf("unexpected error: %v", err))
	}
}
