// internal/game/types.go
//
// Core type definitions for the equation-guessing engine.
// Defines:
//   - Mark: per-symbol result of a guess (exact/present/absent).
//   - Game: state for a single in-progress or finished game.

package game

// Mark represents the evaluation result for a single symbol in a guess.
// Possible values:
//   - "exact":   symbol is correct and in the correct position.
//   - "present": symbol exists in the target but in a different position.
//   - "absent":  symbol does not exist in the (remaining) target at all.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent      = "present"
	MarkAbsent       = "absent"
)

// Game holds the state of a single session.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Target   string   // The secret equation (always 8 characters).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Cols     int      // Symbols per equation (always 8).
	Guesses  []string // List of accepted guesses made so far.
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
