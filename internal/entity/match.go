package entity

import "github.com/rocketscienceinc/tictactoe-cli/internal/board"

// Match is the record of one finished game handed to the scoreboard.
type Match struct {
	ID      string
	PlayerX string
	PlayerO string
	Winner  board.Token // empty for a draw
	Cells   board.Cells
}

// Totals are the running counters across all matches of the session.
type Totals struct {
	Games  int
	WinsX  int
	WinsO  int
	Draws  int
	LastID string
}
