package lexer

import "github.com/minic-lang/minic/frontend/common"

// Punct represents a punctuation token.
type Punct int

const (
	_ Punct = iota

	// PunctPlus is `+`
	PunctPlus
	// PunctMinus is `-`
	PunctMinus
	// PunctAsterisk is `*`
	PunctAsterisk
	// PunctSlash is `/`
	PunctSlash
	// PunctPercent is `%`
	PunctPercent
	// PunctEqual is `=`
	PunctEqual
	// PunctEqualEqual is `==`
	PunctEqualEqual
	// PunctNotEqual is `!=`
	PunctNotEqual
	// PunctLessThan is `<`
	PunctLessThan
	// PunctLessThanEqual is `<=`
	PunctLessThanEqual
	// PunctGreaterThan is `>`
	PunctGreaterThan
	// PunctGreaterThanEqual is `>=`
	PunctGreaterThanEqual
	// PunctAndAnd is `&&`
	PunctAndAnd
	// PunctOrOr is `||`
	PunctOrOr
	// PunctBang is `!`
	PunctBang
	// PunctPlusPlus is `++`
	PunctPlusPlus
	// PunctMinusMinus is `--`
	PunctMinusMinus
	// PunctPlusEqual is `+=`
	PunctPlusEqual
	// PunctMinusEqual is `-=`
	PunctMinusEqual
	// PunctAsteriskEqual is `*=`
	PunctAsteriskEqual
	// PunctSlashEqual is `/=`
	PunctSlashEqual
	// PunctPercentEqual is `%=`
	PunctPercentEqual
	// PunctSemicolon is `;`
	PunctSemicolon
	// PunctColon is `:`
	PunctColon
	// PunctComma is `,`
	PunctComma
	// PunctDot is `.`
	PunctDot
	// PunctOpenParen is `(`
	PunctOpenParen
	// PunctCloseParen is `)`
	PunctCloseParen
	// PunctOpenBrace is `{`
	PunctOpenBrace
	// PunctCloseBrace is `}`
	PunctCloseBrace
	// PunctOpenBracket is `[`
	PunctOpenBracket
	// PunctCloseBracket is `]`
	PunctCloseBracket
)

var puncts = map[string]Punct{
	"+":  PunctPlus,
	"-":  PunctMinus,
	"*":  PunctAsterisk,
	"/":  PunctSlash,
	"%":  PunctPercent,
	"=":  PunctEqual,
	"==": PunctEqualEqual,
	"!=": PunctNotEqual,
	"<":  PunctLessThan,
	"<=": PunctLessThanEqual,
	">":  PunctGreaterThan,
	">=": PunctGreaterThanEqual,
	"&&": PunctAndAnd,
	"||": PunctOrOr,
	"!":  PunctBang,
	"++": PunctPlusPlus,
	"--": PunctMinusMinus,
	"+=": PunctPlusEqual,
	"-=": PunctMinusEqual,
	"*=": PunctAsteriskEqual,
	"/=": PunctSlashEqual,
	"%=": PunctPercentEqual,
	";":  PunctSemicolon,
	":":  PunctColon,
	",":  PunctComma,
	".":  PunctDot,
	"(":  PunctOpenParen,
	")":  PunctCloseParen,
	"{":  PunctOpenBrace,
	"}":  PunctCloseBrace,
	"[":  PunctOpenBracket,
	"]":  PunctCloseBracket,
}

var punctNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Punct
	for _, p := range puncts {
		if p > max {
			max = p
		}
	}
	names := make([]string, max+1)
	for lit, p := range puncts {
		names[p] = lit
	}
	return names
}()

type TokPunct struct {
	Punct Punct
	span  common.Span
}

func (t TokPunct) isToken() {}

func (t TokPunct) Span() common.Span {
	return t.span
}

func (t TokPunct) String() string {
	return punctNames[t.Punct]
}

func (t TokPunct) Is(other string) bool {
	return puncts[other] == t.Punct
}

func (t TokPunct) AsString() string {
	return t.String()
}

func newTokPunct(p Punct, span common.Span) TokPunct {
	return TokPunct{Punct: p, span: span}
}
