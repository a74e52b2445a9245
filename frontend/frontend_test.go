package frontend

import (
	"testing"

	"github.com/minic-lang/minic/frontend/sema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeOk(t *testing.T) {
	result := Analyze("ok.mc", "int main() { int a = 1; return a; }")
	require.True(t, result.Ok())
	require.NotNil(t, result.TU)
	assert.Len(t, result.TU.Decls, 1)
	assert.Empty(t, result.Diagnostics())
}

func TestAnalyzeLexError(t *testing.T) {
	result := Analyze("bad.mc", `int s = "abc`)
	assert.False(t, result.Ok())
	require.NotNil(t, result.LexErr)
	assert.Nil(t, result.TU)
	assert.Equal(t, "unterminated string literal", result.LexErr.Msg)
	assert.Equal(t, uint32(9), result.LexErr.Span.ColumnStart)

	diags := result.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "unterminated string literal")
}

func TestAnalyzeSyntaxError(t *testing.T) {
	result := Analyze("bad.mc", "int main() { return 1 }")
	assert.False(t, result.Ok())
	require.NotNil(t, result.SynErr)
	assert.Nil(t, result.TU)
	assert.Equal(t, ";", result.SynErr.Expected)
	require.Len(t, result.Diagnostics(), 1)
}

func TestAnalyzeSemanticErrors(t *testing.T) {
	result := Analyze("bad.mc", "int x;\nint x;\nint main() { return y; }")
	assert.False(t, result.Ok())
	// the tree survives semantic errors
	require.NotNil(t, result.TU)
	require.Len(t, result.SemErrs, 2)
	assert.Equal(t, sema.ErrRedeclared, result.SemErrs[0].Kind)
	assert.Equal(t, uint32(2), result.SemErrs[0].Span.LineStart)
	assert.Equal(t, sema.ErrUndeclared, result.SemErrs[1].Kind)
	assert.Len(t, result.Diagnostics(), 2)
}

const roundTripSrc = `
const int limit = 10;
int counter;

float scale(float value, int factor) {
    return value * (float)factor;
}

int main() {
    int i, total = 0;
    char sep = '\n';
    for (i = 0; i < limit; i++) {
        total += i;
    }
    while (total > 0 && !(total % 2 == 1)) {
        total = total - 1;
    }
    do {
        counter++;
    } while (counter < 3);
    if (total == 0) {
        counter = -counter;
    } else
        counter = limit % 2;
    return total;
}
`

// Print output must re-parse to an equivalent tree: printing the re-parsed
// tree reproduces the text exactly.
func TestPrintRoundTrip(t *testing.T) {
	first := Analyze("rt.mc", roundTripSrc)
	require.True(t, first.Ok())

	printed := Print(first.TU)
	second := Analyze("rt.mc", printed)
	require.True(t, second.Ok(), "printed source failed to analyze:\n%s", printed)
	assert.Equal(t, printed, Print(second.TU))
}

func TestPrintSpellsTreeShape(t *testing.T) {
	result := Analyze("p.mc", "int f() { return 1 + 2 * 3; }")
	require.True(t, result.Ok())
	assert.Contains(t, Print(result.TU), "return 1 + (2 * 3);")

	result = Analyze("p.mc", "int f() { return (1 + 2) * 3; }")
	require.True(t, result.Ok())
	assert.Contains(t, Print(result.TU), "return (1 + 2) * 3;")
}

func TestHandleSuiteToml(t *testing.T) {
	st, err := HandleSuiteToml(`
name = "smoke"

[[cases]]
name = "ok case"
file = "ok.mc"
expect = "ok"

[[cases]]
name = "bad case"
file = "bad.mc"
expect = "semantic-errors"
errors = 2
`)
	require.NoError(t, err)
	assert.Equal(t, "smoke", st.Name)
	require.Len(t, st.Cases, 2)
	assert.Equal(t, "ok", st.Cases[0].Expect)
	assert.Equal(t, 2, st.Cases[1].Errors)
}

func TestHandleSuiteTomlRejectsBadManifest(t *testing.T) {
	// missing cases
	_, err := HandleSuiteToml(`name = "empty"`)
	assert.Error(t, err)

	// unknown expectation
	_, err = HandleSuiteToml(`
name = "bad"

[[cases]]
name = "x"
file = "x.mc"
expect = "explodes"
`)
	assert.Error(t, err)
}
