package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/board"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Scoreboard keeps match results for the lifetime of the process.
type Scoreboard interface {
	Record(ctx context.Context, match *entity.Match) error
	Totals(ctx context.Context) (entity.Totals, error)
}

type memoryScoreboard struct {
	mu     sync.Mutex
	totals entity.Totals
}

// NewScoreboard returns an in-memory scoreboard. Nothing is written to disk;
// the counters die with the process.
func NewScoreboard() Scoreboard {
	return &memoryScoreboard{}
}

func (that *memoryScoreboard) Record(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.totals.Games++

	switch match.Winner {
	case board.TokenX:
		that.totals.WinsX++
	case board.TokenO:
		that.totals.WinsO++
	default:
		that.totals.Draws++
	}

	that.totals.LastID = match.ID

	return nil
}

func (that *memoryScoreboard) Totals(_ context.Context) (entity.Totals, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.totals, nil
}
