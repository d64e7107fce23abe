package entity

import "github.com/rocketscienceinc/tictactoe-cli/internal/board"

// Player binds a display name to the mark it plays this game.
type Player struct {
	Name string
	Mark board.Token
}
