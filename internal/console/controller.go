package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dropfour/connect-four/internal/domain"
)

// Controller runs an interactive Connect Four session over a text
// stream. It drives the engine only through its public API and never
// mutates game state on its own.
type Controller struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewController reads whitespace-separated tokens from in and writes
// prompts and board renderings to out.
func NewController(in io.Reader, out io.Writer) *Controller {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Controller{
		scanner: scanner,
		out:     out,
	}
}

// PlayGame prompts for moves until the game is over or the player
// quits, then offers a rematch. Rejected input is reported as a notice
// and the player is re-prompted; the board stays untouched.
func (c *Controller) PlayGame(engine *domain.Engine) error {
	for {
		for !engine.IsGameOver() {
			c.printf("%s\n", engine)
			c.printf("Current turn: %s\n", engine.Turn())
			c.printf("Enter a column (1-%d), or q to quit: ", engine.Columns())

			input, ok := c.next()
			if !ok {
				return c.scanner.Err()
			}
			if strings.EqualFold(input, "q") {
				c.printf("Game quit! Ending game state:\n%s", engine)
				return c.scanner.Err()
			}

			column, err := strconv.Atoi(input)
			if err != nil {
				c.printf("Not a valid number: %s\n", input)
				continue
			}

			// the prompt is 1-indexed, the engine is 0-indexed
			if err := engine.MakeMove(column - 1); err != nil {
				c.printf("Invalid move: %s\n", err)
			}
		}

		c.printf("%s\n", engine)
		if winner := engine.Winner(); winner != domain.Empty {
			c.printf("Game over! %s wins!\n", winner)
		} else {
			c.printf("Game over! It's a tie.\n")
		}

		c.printf("Play again? (yes/no): ")
		answer, ok := c.next()
		if !ok || !strings.EqualFold(answer, "yes") {
			return c.scanner.Err()
		}
		engine.ResetBoard()
	}
}

func (c *Controller) next() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
