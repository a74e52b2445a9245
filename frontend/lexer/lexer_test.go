package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, code string) []Token {
	t.Helper()
	tokens, err := Lex("test.mc", code)
	require.Nil(t, err)
	require.NotEmpty(t, tokens)
	require.True(t, IsEOF(tokens[len(tokens)-1]))
	return tokens[:len(tokens)-1]
}

func lexFail(t *testing.T, code string) *LexError {
	t.Helper()
	tokens, err := Lex("test.mc", code)
	require.Nil(t, tokens)
	require.NotNil(t, err)
	return err
}

func TestPunctMaximalMunch(t *testing.T) {
	cases := []struct {
		code string
		want []string
	}{
		{"+++", []string{"++", "+"}},
		{"<= < ==", []string{"<=", "<", "=="}},
		{"a+=b", []string{"a", "+=", "b"}},
		{"!=!", []string{"!=", "!"}},
		{"&&||", []string{"&&", "||"}},
		{"---x", []string{"--", "-", "x"}},
	}

	for _, c := range cases {
		tokens := lex(t, c.code)
		got := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			got = append(got, tok.String())
		}
		assert.Equal(t, c.want, got, "code: %s", c.code)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tokens := lex(t, "int foo while_x _bar const x1")

	kw, ok := tokens[0].(TokKeyword)
	require.True(t, ok)
	assert.Equal(t, KwInt, kw.Keyword)
	assert.True(t, kw.Keyword.IsType())

	for i, want := range []string{"foo", "while_x", "_bar"} {
		ident, ok := tokens[i+1].(TokIdent)
		require.True(t, ok, "token %d", i+1)
		assert.Equal(t, want, ident.Raw)
	}

	kw, ok = tokens[4].(TokKeyword)
	require.True(t, ok)
	assert.Equal(t, KwConst, kw.Keyword)
	assert.False(t, kw.Keyword.IsType())

	_, ok = tokens[5].(TokIdent)
	assert.True(t, ok)
}

func TestNumberLiterals(t *testing.T) {
	tokens := lex(t, "42 3.14 0")

	i, ok := tokens[0].(TokInt)
	require.True(t, ok)
	assert.Equal(t, "42", i.Raw)

	f, ok := tokens[1].(TokFloat)
	require.True(t, ok)
	assert.Equal(t, "3.14", f.Raw)

	_, ok = tokens[2].(TokInt)
	assert.True(t, ok)
}

func TestMalformedNumbers(t *testing.T) {
	err := lexFail(t, "1.")
	assert.Equal(t, "malformed number literal: expected digit after '.'", err.Msg)

	err = lexFail(t, "123abc")
	assert.Equal(t, "malformed number literal: 123a", err.Msg)
}

func TestStringLiteral(t *testing.T) {
	tokens := lex(t, `"hello" "a\nb" "q\"q" ""`)

	want := []string{"hello", "a\nb", `q"q`, ""}
	for i, w := range want {
		s, ok := tokens[i].(TokString)
		require.True(t, ok, "token %d", i)
		assert.Equal(t, w, s.Raw)
	}
}

func TestUnterminatedString(t *testing.T) {
	// The error span points at the opening quote.
	err := lexFail(t, `int s = "abc`)
	assert.Equal(t, "unterminated string literal", err.Msg)
	assert.Equal(t, uint32(1), err.Span.LineStart)
	assert.Equal(t, uint32(9), err.Span.ColumnStart)

	err = lexFail(t, "\"abc\ndef\"")
	assert.Equal(t, "unterminated string literal", err.Msg)
}

func TestInvalidEscape(t *testing.T) {
	err := lexFail(t, `"a\qb"`)
	assert.Equal(t, `invalid escape sequence: \q`, err.Msg)
}

func TestCharLiteral(t *testing.T) {
	tokens := lex(t, `'a' '\n' '\\' '\''`)

	want := []rune{'a', '\n', '\\', '\''}
	for i, w := range want {
		c, ok := tokens[i].(TokChar)
		require.True(t, ok, "token %d", i)
		assert.Equal(t, w, c.Value)
	}
}

func TestBadCharLiterals(t *testing.T) {
	err := lexFail(t, "''")
	assert.Equal(t, "empty char literal", err.Msg)

	err = lexFail(t, "'ab'")
	assert.Equal(t, "char literal may only contain one character", err.Msg)

	err = lexFail(t, "'a")
	assert.Equal(t, "unterminated char literal", err.Msg)
}

func TestComments(t *testing.T) {
	tokens := lex(t, "a // one\nb /* two\nlines */ c")
	require.Len(t, tokens, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, tokens[i].String(), "token %d", i)
	}

	err := lexFail(t, "a /* never closed")
	assert.Equal(t, "unterminated block comment", err.Msg)
}

func TestCRLFNormalization(t *testing.T) {
	tokens := lex(t, "a\r\nb")
	require.Len(t, tokens, 2)
	assert.Equal(t, uint32(1), tokens[0].Span().LineStart)
	assert.Equal(t, uint32(2), tokens[1].Span().LineStart)
	assert.Equal(t, uint32(1), tokens[1].Span().ColumnStart)
}

func TestSpans(t *testing.T) {
	tokens := lex(t, "int x")

	span := tokens[0].Span()
	assert.Equal(t, uint32(1), span.LineStart)
	assert.Equal(t, uint32(1), span.ColumnStart)
	assert.Equal(t, uint32(3), span.ColumnEnd)
	assert.Equal(t, "test.mc", span.Source)

	span = tokens[1].Span()
	assert.Equal(t, uint32(5), span.ColumnStart)
	assert.Equal(t, uint32(5), span.ColumnEnd)
}

func TestUnexpectedCharacter(t *testing.T) {
	err := lexFail(t, "int @x;")
	assert.Equal(t, "unexpected character: @", err.Msg)
}
