package equation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdle/go-server/internal/equation"
)

func TestValidateAcceptsWellFormedEquations(t *testing.T) {
	valid := []string{
		"12+35=47", // addition, NN+NN=NN
		"62-39=23", // subtraction
		"3*45=135", // multiplication, N*NN=NNN
		"252/36=7", // exact division, NNN/NN=N
		"8+95=103", // uneven widths still 8 chars
		"108/9=12", // quotient wider than divisor
	}
	for _, s := range valid {
		assert.NoError(t, equation.Validate(s), s)
	}
}

func TestValidateRejectsMalformedEquations(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"too short", "1+2=3", equation.ErrLength},
		{"too long", "12+345=57", equation.ErrLength},
		{"trailing space", "12+34=46 ", equation.ErrLength},
		{"bad charset", "12+3a=45", equation.ErrCharset},
		{"no equals", "12+34+46", equation.ErrEquals},
		{"two equals", "12=34=46", equation.ErrEquals},
		{"no operator", "1234=128", equation.ErrOperator},
		{"two operators", "1+2+3=06", equation.ErrOperator},
		{"operator after equals", "1234=+46", equation.ErrOperator},
		{"operator first", "+1234=56", equation.ErrOperand},
		{"empty rhs operand", "12+=3446", equation.ErrOperand},
		{"empty result", "12+3446=", equation.ErrOperand},
		{"leading zero lhs", "02+34=36", equation.ErrLeadingZero},
		{"leading zero result", "30-24=06", equation.ErrLeadingZero},
		{"wrong arithmetic", "12+34=47", equation.ErrArithmetic},
		{"inexact division", "100/30=3", equation.ErrArithmetic},
		{"divide by zero", "100/0=10", equation.ErrArithmetic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := equation.Validate(tc.in)
			require.Error(t, err, tc.in)
			assert.ErrorIs(t, err, tc.err, tc.in)
		})
	}
}

func TestValidateDivisionByZeroVariants(t *testing.T) {
	// A zero divisor can only appear as the lone digit 0.
	assert.ErrorIs(t, equation.Validate("123/0=41"), equation.ErrArithmetic)
}

func TestValidateNegativeResultImpossible(t *testing.T) {
	// 12-34 is -22, which can never match a digit-run result.
	assert.ErrorIs(t, equation.Validate("12-34=22"), equation.ErrArithmetic)
}

func TestSymbolIndexCoversAlphabet(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < len(equation.Alphabet()); i++ {
		idx := equation.SymbolIndex(equation.Alphabet()[i])
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 15)
		assert.False(t, seen[idx], "duplicate index %d", idx)
		seen[idx] = true
	}
	assert.Equal(t, -1, equation.SymbolIndex('a'))
	assert.Equal(t, -1, equation.SymbolIndex(' '))
}

func TestIsValidMatchesValidate(t *testing.T) {
	assert.True(t, equation.IsValid("12+35=47"))
	assert.False(t, equation.IsValid("12+35=48"))
}
