// internal/equation/equation.go
//
// Equation format and validation for the Nerdle game.
//
// An equation is a fixed 8-character string of the form:
//   <digits><op><digits>=<digits>
// where <op> is one of + - * /, operands are decimal integers without
// leading zeros, and the arithmetic identity holds under integer
// semantics (division must be exact, divisor non-zero).
//
// Responsibilities:
//   - Define the symbol alphabet shared with the scoring engine.
//   - Validate candidate equations (structure + arithmetic).

package equation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Length is the fixed size of every equation and guess.
const Length = 8

// alphabet lists every symbol an equation may contain.
// Index order matters: the scoring engine uses SymbolIndex for its
// per-symbol counting table.
const alphabet = "0123456789+-*/="

// Validation errors. Callers typically only care about nil vs non-nil,
// but the CLI surfaces the message to the player.
var (
	ErrLength      = errors.New("equation must be exactly 8 characters")
	ErrCharset     = errors.New("equation contains invalid characters")
	ErrEquals      = errors.New("equation must have exactly one equals sign")
	ErrOperator    = errors.New("equation must have exactly one operator before the equals sign")
	ErrOperand     = errors.New("equation operands must be non-empty digit runs")
	ErrLeadingZero = errors.New("operands must not have leading zeros")
	ErrArithmetic  = errors.New("equation is not arithmetically correct")
)

// Alphabet returns the set of valid equation symbols.
func Alphabet() string { return alphabet }

// SymbolIndex maps an equation symbol to a dense index 0..14,
// or -1 for any byte outside the alphabet.
func SymbolIndex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c == '+':
		return 10
	case c == '-':
		return 11
	case c == '*':
		return 12
	case c == '/':
		return 13
	case c == '=':
		return 14
	}
	return -1
}

// isOperator reports whether c is one of + - * /.
func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// parsed holds the components of a split equation.
type parsed struct {
	op     byte
	lhs    int // left operand
	rhs    int // right operand
	result int // value after '='
}

// parse splits and validates the structure of s without checking arithmetic.
func parse(s string) (parsed, error) {
	var p parsed
	if len(s) != Length {
		return p, ErrLength
	}
	for i := 0; i < len(s); i++ {
		if SymbolIndex(s[i]) < 0 {
			return p, ErrCharset
		}
	}
	if strings.Count(s, "=") != 1 {
		return p, ErrEquals
	}
	eqIdx := strings.IndexByte(s, '=')

	// Exactly one operator, and it must sit before the equals sign.
	opIdx := -1
	for i := 0; i < len(s); i++ {
		if isOperator(s[i]) {
			if opIdx >= 0 {
				return p, ErrOperator
			}
			opIdx = i
		}
	}
	if opIdx < 0 || opIdx > eqIdx {
		return p, ErrOperator
	}
	if opIdx == 0 || opIdx >= eqIdx-1 || eqIdx == len(s)-1 {
		return p, ErrOperand
	}

	lhs, err := parseOperand(s[:opIdx])
	if err != nil {
		return p, err
	}
	rhs, err := parseOperand(s[opIdx+1 : eqIdx])
	if err != nil {
		return p, err
	}
	result, err := parseOperand(s[eqIdx+1:])
	if err != nil {
		return p, err
	}
	p.op, p.lhs, p.rhs, p.result = s[opIdx], lhs, rhs, result
	return p, nil
}

// parseOperand converts a digit run to an int, rejecting leading zeros
// (a lone "0" is fine).
func parseOperand(s string) (int, error) {
	if s == "" {
		return 0, ErrOperand
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, ErrLeadingZero
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrOperand
	}
	return n, nil
}

// Validate checks s against the full equation contract: length, charset,
// structure, leading zeros, and the integer arithmetic identity.
// Returns nil for a valid equation.
func Validate(s string) error {
	p, err := parse(s)
	if err != nil {
		return err
	}
	var got int
	switch p.op {
	case '+':
		got = p.lhs + p.rhs
	case '-':
		got = p.lhs - p.rhs
	case '*':
		got = p.lhs * p.rhs
	case '/':
		if p.rhs == 0 {
			return ErrArithmetic
		}
		if p.lhs%p.rhs != 0 {
			return ErrArithmetic
		}
		got = p.lhs / p.rhs
	}
	if got != p.result {
		return fmt.Errorf("%w: %s", ErrArithmetic, s)
	}
	return nil
}

// IsValid is the boolean form of Validate.
func IsValid(s string) bool { return Validate(s) == nil }
