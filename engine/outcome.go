package engine

import (
	"fmt"
	"strings"
	"time"
)

// Outcome is the final record of a match
type Outcome struct {
	Score   [2]int
	Quit    bool
	Frames  int
	Elapsed time.Duration
}

// Winner returns the winning player number (1 or 2)
// Player 1 wins only with a strictly higher score, so a tie goes to Player 2
func (o Outcome) Winner() int {
	if o.Score[0] > o.Score[1] {
		return 1
	}
	return 2
}

// Summary is the text printed once the terminal is back in cooked mode
func (o Outcome) Summary() string {
	var sb strings.Builder
	sb.WriteString("\nGame Over!\n")
	fmt.Fprintf(&sb, "Player %d wins!\n", o.Winner())
	fmt.Fprintf(&sb, "Final score: %d - %d\n", o.Score[0], o.Score[1])
	return sb.String()
}
