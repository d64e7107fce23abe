package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/board"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestScoreboard(t *testing.T) {
	ctx := context.Background()

	// Given: a fresh scoreboard
	scores := NewScoreboard()

	totals, err := scores.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.Totals{}, totals)

	// When: an X win, an O win and a draw are recorded
	require.NoError(t, scores.Record(ctx, &entity.Match{ID: "a", Winner: board.TokenX}))
	require.NoError(t, scores.Record(ctx, &entity.Match{ID: "b", Winner: board.TokenO}))
	require.NoError(t, scores.Record(ctx, &entity.Match{ID: "c"}))

	// Then: the counters accumulate and the last match id sticks
	totals, err = scores.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.Totals{
		Games:  3,
		WinsX:  1,
		WinsO:  1,
		Draws:  1,
		LastID: "c",
	}, totals)
}
