package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdle/go-server/internal/equation"
)

// marks is shorthand for building expected feedback:
// E=exact, P=present, A=absent.
func marks(s string) []Mark {
	out := make([]Mark, len(s))
	for i, c := range s {
		switch c {
		case 'E':
			out[i] = MarkExact
		case 'P':
			out[i] = MarkPresent
		default:
			out[i] = MarkAbsent
		}
	}
	return out
}

func TestScoreGuessVectors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		guess  string
		want   string
	}{
		// One literal triple per operator, duplicates included.
		{"addition swap", "12+35=47", "35+12=47", "PPEPPEEE"},
		{"subtraction", "62-39=23", "23-12=11", "PPEAPEAA"},
		{"multiplication", "3*45=135", "5*43=215", "PEEPEAPE"},
		{"division", "252/36=7", "324/36=9", "APAEEEEA"},
		// Full match.
		{"full match", "12+35=47", "12+35=47", "EEEEEEEE"},
		// No shared symbols at any position (raw strings; scoring does
		// not require arithmetic validity of its inputs).
		{"no overlap", "12+34=46", "55*77/99", "AAAAAAAA"},
		// Repeated digit: target has three 1s, guess has four.
		{"duplicate digits", "11+12=23", "21+11=32", "PEEEPEPP"},
		// Guess repeats a digit the target holds only once: the exact
		// match consumes it, every other occurrence is absent.
		{"over-credited duplicate", "10+35=45", "11+11=22", "EAEAAEAA"},
		// Mixed duplicate with structural symbols exact.
		{"shared result", "62-39=23", "39-16=23", "PPEAPEEE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreGuess(tc.target, tc.guess)
			assert.Equal(t, marks(tc.want), got)
		})
	}
}

// Scoring is not symmetric: swapping target and guess changes the
// feedback unless the two are equal.
func TestScoreGuessAsymmetry(t *testing.T) {
	a, b := "62-39=23", "23-12=11"
	assert.Equal(t, marks("PPEAPEAA"), scoreGuess(a, b))
	assert.Equal(t, marks("APEPAEPA"), scoreGuess(b, a))
	assert.NotEqual(t, scoreGuess(a, b), scoreGuess(b, a))
}

// Structural symbols follow the same multiset rules as digits.
func TestScoreGuessStructuralSymbols(t *testing.T) {
	got := scoreGuess("252/36=7", "252*36=7")
	// Only the operator differs; '*' is absent from the target.
	assert.Equal(t, marks("EEEAEEEE"), got)
}

func TestNewGameDefaults(t *testing.T) {
	g := New("")
	assert.Len(t, g.ID, 16)
	assert.Equal(t, 6, g.Rows)
	assert.Equal(t, 8, g.Cols)
	assert.NoError(t, equation.Validate(g.Target))
	assert.False(t, g.Finished)
}

func TestNewGameFixedTarget(t *testing.T) {
	g := New("12+35=47")
	assert.Equal(t, "12+35=47", g.Target)
}

func TestApplyGuessWin(t *testing.T) {
	g := New("12+35=47")
	m, state, err := g.ApplyGuess("12+35=47")
	require.NoError(t, err)
	assert.Equal(t, marks("EEEEEEEE"), m)
	assert.Equal(t, "won", state)
	assert.True(t, g.Finished)
	assert.True(t, g.Won)
}

func TestApplyGuessInvalidDoesNotConsumeAttempt(t *testing.T) {
	g := New("12+35=47")
	for _, bad := range []string{"", "12+35=48", "12+3x=47", "1+1=2"} {
		_, state, err := g.ApplyGuess(bad)
		require.Error(t, err, bad)
		assert.Equal(t, "playing", state)
	}
	assert.Empty(t, g.Guesses)
}

func TestApplyGuessLossAfterSixAttempts(t *testing.T) {
	g := New("12+35=47")
	for i := 0; i < 5; i++ {
		_, state, err := g.ApplyGuess("62-39=23")
		require.NoError(t, err)
		assert.Equal(t, "playing", state)
	}
	_, state, err := g.ApplyGuess("62-39=23")
	require.NoError(t, err)
	assert.Equal(t, "lost", state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)

	// Further guesses are rejected.
	_, state, err = g.ApplyGuess("12+35=47")
	assert.ErrorIs(t, err, ErrFinished)
	assert.Equal(t, "lost", state)
}

func TestApplyGuessTrimsWhitespace(t *testing.T) {
	g := New("12+35=47")
	m, state, err := g.ApplyGuess("  12+35=47\n")
	require.NoError(t, err)
	assert.Equal(t, "won", state)
	assert.Equal(t, marks("EEEEEEEE"), m)
}
