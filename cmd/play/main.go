// cmd/play/main.go
//
// Interactive terminal client. Generates a secret equation, reads
// guesses from stdin, and renders per-symbol feedback as colored tiles:
// green for exact, yellow for present, gray for absent.
//
// Invalid input (wrong length, bad characters, broken arithmetic) is
// re-prompted and never counts against the six-attempt budget.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nerdle/go-server/internal/equation"
	"github.com/nerdle/go-server/internal/game"
)

var (
	styleExact   = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0"))
	stylePresent = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	styleAbsent  = lipgloss.NewStyle().Background(lipgloss.Color("7")).Foreground(lipgloss.Color("0"))
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	printWelcome()

	for {
		playOnce(in)
		if !askYesNo(in, "Would you like to play again? (y/n): ") {
			fmt.Println("Thanks for playing!")
			return
		}
	}
}

// playOnce runs a single six-attempt session against a fresh target.
func playOnce(in *bufio.Scanner) {
	g := game.New("")
	fmt.Println("Equation generated! Start guessing...")
	fmt.Println()

	for !g.Finished {
		remaining := g.Rows - len(g.Guesses)
		fmt.Printf("Attempts remaining: %d\n", remaining)
		guess := readGuess(in)

		marks, state, err := g.ApplyGuess(guess)
		if err != nil {
			// Re-prompt; no attempt consumed.
			fmt.Println("Invalid guess:", err)
			continue
		}
		fmt.Println(renderRow(guess, marks))
		fmt.Println()

		switch state {
		case "won":
			fmt.Printf("Solved it in %d attempts!\n", len(g.Guesses))
		case "lost":
			fmt.Printf("Out of attempts. The equation was: %s\n", g.Target)
		}
	}
}

// readGuess prompts until a line of the right length arrives.
// Full equation validation happens in ApplyGuess.
func readGuess(in *bufio.Scanner) string {
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			os.Exit(0)
		}
		guess := strings.TrimSpace(in.Text())
		if len(guess) != equation.Length {
			fmt.Printf("Guess must be exactly %d characters (e.g. 12+34=46).\n", equation.Length)
			continue
		}
		return guess
	}
}

// renderRow draws a guess as a row of colored tiles.
func renderRow(guess string, marks []game.Mark) string {
	var b strings.Builder
	for i := 0; i < len(guess); i++ {
		tile := " " + string(guess[i]) + " "
		switch marks[i] {
		case game.MarkExact:
			b.WriteString(styleExact.Render(tile))
		case game.MarkPresent:
			b.WriteString(stylePresent.Render(tile))
		default:
			b.WriteString(styleAbsent.Render(tile))
		}
	}
	return b.String()
}

func printWelcome() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("                        NERDLE")
	fmt.Println("             A Math Equation Guessing Game")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Println("Guess the 8-character equation in 6 attempts.")
	fmt.Println("Equations look like 12+34=46 (or -, *, /).")
	fmt.Println(renderRow("12+34=46", []game.Mark{
		game.MarkExact, game.MarkAbsent, game.MarkExact, game.MarkPresent,
		game.MarkAbsent, game.MarkExact, game.MarkExact, game.MarkExact,
	}))
	fmt.Println("green = right spot, yellow = wrong spot, gray = not in equation")
	fmt.Println("Valid characters:", equation.Alphabet())
	fmt.Println()
}

// askYesNo prompts until the player answers y/yes or n/no.
func askYesNo(in *bufio.Scanner, prompt string) bool {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Println("Please enter 'y' or 'n'.")
		}
	}
}
