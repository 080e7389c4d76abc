// internal/equation/generator.go
//
// Random target-equation generation.
//
// Every generated equation is exactly 8 characters, so operand digit
// widths are fixed per operator:
//   +  NN+NN=NN   two 2-digit operands, 2-digit sum
//   -  NN-NN=NN   2-digit operands, 2-digit difference
//   *  N*NN=NNN   1-digit × 2-digit, 3-digit product
//   /  NNN/NN=N   3-digit ÷ 2-digit, 1-digit quotient
//
// Sampling is rejection-based: draw a candidate within the schema's
// ranges, keep it only if the result lands in its digit slot. Division
// is sampled backwards (divisor × quotient → dividend) so that exact
// division holds by construction instead of by a near-zero-acceptance
// divisibility check.

package equation

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// maxAttempts bounds the rejection loop. The per-operator acceptance
// rates are high enough that this is never reached in practice; the
// cap only guards against a future schema bug turning into a spin.
const maxAttempts = 10000

// fallback is a known-valid equation returned if sampling somehow
// exhausts its attempt budget.
const fallback = "12+35=47"

var operators = [4]byte{'+', '-', '*', '/'}

// Generator produces random valid equations from an injectable
// randomness source, so the daily mode can derive deterministic
// targets from a seeded source.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator seeded from crypto/rand.
func NewGenerator() *Generator {
	var b [16]byte
	_, _ = cryptorand.Read(b[:])
	return New(rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(b[:8]),
		binary.BigEndian.Uint64(b[8:]),
	)))
}

// New returns a Generator drawing from rnd.
func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate returns a random valid 8-character equation.
func (g *Generator) Generate() string {
	for i := 0; i < maxAttempts; i++ {
		op := operators[g.rnd.IntN(len(operators))]
		a, b, result, ok := g.sample(op)
		if !ok {
			continue
		}
		eq := fmt.Sprintf("%d%c%d=%d", a, op, b, result)
		if len(eq) == Length && IsValid(eq) {
			return eq
		}
	}
	return fallback
}

// sample draws one candidate (lhs, rhs, result) for op.
// ok is false when the candidate's result misses its digit slot and
// the caller should redraw.
func (g *Generator) sample(op byte) (a, b, result int, ok bool) {
	switch op {
	case '+':
		a = g.between(10, 89)
		b = g.between(10, 89)
		result = a + b
		ok = result <= 99
	case '-':
		a = g.between(20, 99)
		b = g.between(10, a-10)
		result = a - b
		ok = result > 10
	case '*':
		a = g.between(2, 9)
		b = g.between(10, 99)
		result = a * b
		ok = result > 100 && result < 1000
	case '/':
		// Backwards: divisor and quotient first, dividend by product.
		b = g.between(12, 99)
		result = g.between(2, 9)
		a = b * result
		ok = a >= 100 && a <= 999
	}
	return a, b, result, ok
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}
