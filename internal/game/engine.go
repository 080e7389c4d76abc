// internal/game/engine.go
//
// Core game engine for a single equation-guessing session.
// Responsibilities:
//   - Create new games with deterministic dimensions (6x8).
//   - Validate and apply guesses (format + arithmetic via the equation package).
//   - Score guesses using the classic two-pass Wordle algorithm over the
//     equation alphabet (digits, operators, equals sign).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Targets come from the equation package's generator.
//   - Mark is an enum defined in this package (MarkExact/MarkPresent/MarkAbsent).
//   - An invalid guess never consumes an attempt; the caller re-prompts.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/nerdle/go-server/internal/equation"
)

const (
	defaultRows = 6
	defaultCols = equation.Length
)

// ErrFinished is returned by ApplyGuess once the game is over.
var ErrFinished = errors.New("game finished")

// New constructs a new game instance.
// If withTarget is empty, a random target is drawn from the equation generator.
func New(withTarget string) *Game {
	target := withTarget
	if target == "" {
		target = equation.NewGenerator().Generate()
	}
	return &Game{
		ID:      randomID(),
		Target:  target,
		Rows:    defaultRows,
		Cols:    defaultCols,
		Guesses: []string{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the per-symbol marks, the new state string ("playing"/"won"/"lost"),
// or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be a valid 8-character equation (charset, structure,
//     arithmetic). A rejected guess does not count against the attempt
//     budget.
//
// State transitions:
//   - If all tiles are Exact → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) ([]Mark, string, error) {
	if g.Finished {
		return nil, g.state(), ErrFinished
	}
	guess = strings.TrimSpace(guess)
	if err := equation.Validate(guess); err != nil {
		return nil, g.state(), err
	}

	marks := scoreGuess(g.Target, guess)
	g.Guesses = append(g.Guesses, guess)

	if allExact(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.state(), nil
}

// state reports a coarse string representation of the current game state.
func (g *Game) state() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score compares guess against target and returns the per-symbol marks.
// Both strings must be exactly 8 characters; the function is pure and
// safe for concurrent use.
func Score(target, guess string) []Mark {
	return scoreGuess(target, guess)
}

// scoreGuess implements the standard two-pass Wordle scoring algorithm,
// with digits and structural symbols (+ - * / =) treated uniformly.
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non-exact) target symbols by symbol index.
//
// Pass 2:
//   - For each non-exact guess symbol, scanning left to right: if there
//     is remaining count for that symbol, mark Present and decrement the
//     count; otherwise mark Absent.
//
// The left-to-right scan in pass 2 is what decides which duplicate
// occurrence gets credited when the guess repeats a symbol more times
// than the target contains it.
func scoreGuess(target, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	// Symbol frequency for the non-exact positions (15-symbol alphabet).
	var counts [15]int

	// First pass: mark exacts and collect counts for remaining target symbols.
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = MarkExact
		} else {
			counts[equation.SymbolIndex(target[i])]++
		}
	}

	// Second pass: resolve presents/absents for non-exact tiles.
	for i := 0; i < n; i++ {
		if res[i] == MarkExact {
			continue
		}
		j := equation.SymbolIndex(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// allExact returns true if all marks are MarkExact.
func allExact(m []Mark) bool {
	for _, x := range m {
		if x != MarkExact {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
