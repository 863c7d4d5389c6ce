package token_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/natorder/token"
)

// tok is a compact expectation: the kind and the exact span text.
type tok struct {
	kind token.Kind
	span string
}

// scanAll walks value from position 0 to the Empty token and returns every
// token on the way, Empty excluded.
func scanAll(t *testing.T, value string) []tok {
	t.Helper()
	var out []tok
	pos := 0
	for {
		tk := token.Next(value, pos)
		require.Equal(t, pos, tk.Begin, "token must begin at the requested position")
		require.LessOrEqual(t, tk.Begin, tk.End, "token span must be non-decreasing")
		if tk.Kind == token.Empty {
			require.Equal(t, len(value), tk.Begin, "Empty token only occurs at end of string")
			return out
		}
		require.Greater(t, tk.End, tk.Begin, "non-Empty tokens are never zero-width")
		out = append(out, tok{tk.Kind, tk.Span()})
		pos = tk.End
	}
}

// TestNext_PlainRuns verifies the basic digit/text alternation.
func TestNext_PlainRuns(t *testing.T) {
	assert.Equal(t, []tok{
		{token.Text, "abc"},
		{token.Numeric, "123"},
		{token.Text, "a"},
	}, scanAll(t, "abc123a"))

	assert.Equal(t, []tok{{token.Text, "abc"}}, scanAll(t, "abc"))
	assert.Equal(t, []tok{{token.Numeric, "123"}}, scanAll(t, "123"))
	assert.Empty(t, scanAll(t, ""), "empty input yields only the Empty token")
}

// TestNext_SignedAndDecimalStarts covers every numeric-run prefix form:
// digit, ".d", "-d" and "-.d".
func TestNext_SignedAndDecimalStarts(t *testing.T) {
	assert.Equal(t, []tok{{token.Numeric, "5"}}, scanAll(t, "5"))
	assert.Equal(t, []tok{{token.Numeric, ".5"}}, scanAll(t, ".5"))
	assert.Equal(t, []tok{{token.Numeric, "-5"}}, scanAll(t, "-5"))
	assert.Equal(t, []tok{{token.Numeric, "-.5"}}, scanAll(t, "-.5"))

	// The sign and leading dot belong to the numeric token, not to the
	// preceding text.
	assert.Equal(t, []tok{
		{token.Text, "v"},
		{token.Numeric, "-1.5"},
	}, scanAll(t, "v-1.5"))
}

// TestNext_LoneSignAndDotAreText verifies that '-', '.' and "-." with no
// digit behind them are ordinary text.
func TestNext_LoneSignAndDotAreText(t *testing.T) {
	assert.Equal(t, []tok{{token.Text, "-"}}, scanAll(t, "-"))
	assert.Equal(t, []tok{{token.Text, "."}}, scanAll(t, "."))
	assert.Equal(t, []tok{{token.Text, "-."}}, scanAll(t, "-."))
	assert.Equal(t, []tok{
		{token.Numeric, "10"},
		{token.Text, "-"},
	}, scanAll(t, "10-"))
	assert.Equal(t, []tok{
		{token.Text, "a-b"},
	}, scanAll(t, "a-b"))
}

// TestNext_SecondDotTerminatesRun verifies that a run holds at most one '.':
// the second dot starts the next token instead of extending the run.
func TestNext_SecondDotTerminatesRun(t *testing.T) {
	assert.Equal(t, []tok{
		{token.Numeric, "1.2"},
		{token.Numeric, ".3"},
	}, scanAll(t, "1.2.3"))

	// A trailing dot with no digit after it still joins the run, since the
	// run's own dot budget is unspent.
	assert.Equal(t, []tok{{token.Numeric, "-10."}}, scanAll(t, "-10."))

	// But once the budget is spent, the trailing dot is text.
	assert.Equal(t, []tok{
		{token.Numeric, "1.2"},
		{token.Text, "."},
	}, scanAll(t, "1.2."))
}

// TestNext_MixedContent exercises realistic label shapes.
func TestNext_MixedContent(t *testing.T) {
	assert.Equal(t, []tok{
		{token.Text, "Dan "},
		{token.Numeric, "0.00000"},
		{token.Text, " Test"},
	}, scanAll(t, "Dan 0.00000 Test"))

	assert.Equal(t, []tok{
		{token.Text, "item"},
		{token.Numeric, "10"},
	}, scanAll(t, "item10"))

	assert.Equal(t, []tok{
		{token.Text, "abc"},
		{token.Numeric, "10.20"},
		{token.Text, " final.zip"},
	}, scanAll(t, "abc10.20 final.zip"), ".zip extension dot has no digit and stays text")
}

// TestNext_MultibyteText verifies multi-byte runes pass through intact
// inside Text spans.
func TestNext_MultibyteText(t *testing.T) {
	assert.Equal(t, []tok{
		{token.Text, "naïve—"},
		{token.Numeric, "42"},
		{token.Text, "°"},
	}, scanAll(t, "naïve—42°"))
}

// TestNext_PartitionProperty checks, over random inputs, that successive
// tokens partition the string exactly: contiguous spans, no overlap, one
// Empty token at len(value).
func TestNext_PartitionProperty(t *testing.T) {
	const alphabet = "ab-.019 é"
	rng := rand.New(rand.NewPCG(7, 13))
	for range 200 {
		n := rng.IntN(24)
		buf := make([]byte, 0, n*2)
		for range n {
			buf = append(buf, alphabet[rng.IntN(len(alphabet))])
		}
		value := string(buf)

		pos := 0
		for {
			tk := token.Next(value, pos)
			require.Equal(t, pos, tk.Begin, "no gap before token in %q", value)
			if tk.Kind == token.Empty {
				require.Equal(t, len(value), tk.End, "Empty token must sit at the end of %q", value)
				break
			}
			require.Greater(t, tk.End, tk.Begin, "no overlap/stall in %q", value)
			pos = tk.End
		}
	}
}

// TestNext_PositionOutOfRangePanics verifies the fail-fast precondition:
// positions outside [0, len(value)] panic rather than clamp.
func TestNext_PositionOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { token.Next("abc", -1) }, "negative position must panic")
	assert.Panics(t, func() { token.Next("abc", 4) }, "position past the end must panic")
	assert.NotPanics(t, func() { token.Next("abc", 3) }, "position == len is the Empty token, not a violation")
}
