package lexer

import "github.com/minic-lang/minic/frontend/common"

// Keyword represents a reserved keyword.
type Keyword int

const (
	_ Keyword = iota
	KwInt
	KwFloat
	KwChar
	KwBool
	KwVoid
	KwConst
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwReturn
	KwTrue
	KwFalse
)

var keywordTable = map[string]Keyword{
	"int":    KwInt,
	"float":  KwFloat,
	"char":   KwChar,
	"bool":   KwBool,
	"void":   KwVoid,
	"const":  KwConst,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"do":     KwDo,
	"for":    KwFor,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
}

var keywordNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Keyword
	for _, kw := range keywordTable {
		if kw > max {
			max = kw
		}
	}
	names := make([]string, max+1)
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

func lookupKeyword(lit string) (Keyword, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

// IsType reports whether the keyword names one of the declared types.
func (k Keyword) IsType() bool {
	switch k {
	case KwInt, KwFloat, KwChar, KwBool, KwVoid:
		return true
	default:
		return false
	}
}

type TokKeyword struct {
	Keyword Keyword
	span    common.Span
}

func (t TokKeyword) isToken() {}

func (t TokKeyword) Span() common.Span {
	return t.span
}

func (t TokKeyword) String() string {
	return keywordNames[t.Keyword]
}

func (t TokKeyword) Is(other string) bool {
	return keywordTable[other] == t.Keyword
}

func (t TokKeyword) AsString() string {
	return t.String()
}

func newTokKeyword(k Keyword, span common.Span) TokKeyword {
	return TokKeyword{Keyword: k, span: span}
}
