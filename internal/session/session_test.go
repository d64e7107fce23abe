package session

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
)

func newTestSession(t *testing.T, script string) (*Session, *bytes.Buffer, Scoreboard) {
	t.Helper()

	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scores := repository.NewScoreboard()

	sess := New(
		logger,
		strings.NewReader(script),
		terminal.NewPrinter(out),
		rand.New(rand.NewSource(1)), //nolint:gosec // deterministic test order
		scores,
		Options{DefaultNameX: "Player 1", DefaultNameO: "Player 2"},
	)

	return sess, out, scores
}

func TestSession_Run(t *testing.T) {
	t.Run("full game to a win", func(t *testing.T) {
		// Given: a script where the first mover takes the top row; bad input
		// along the way exercises the re-prompt paths
		script := strings.Join([]string{
			"Alice",
			"Bob",
			"frobnicate", // unknown command
			"move 9",     // out of bounds
			"0",
			"m 0", // occupied
			"m 3",
			"b", // show the board again
			"1",
			"4",
			"2", // X completes the top row
			"n", // no rematch
		}, "\n") + "\n"

		sess, out, scores := newTestSession(t, script)

		// When: the session runs to completion
		err := sess.Run(context.Background())
		require.NoError(t, err)

		// Then: every rejected input produced an error line, the game ended
		// with a win and the scoreboard counted it for X
		text := out.String()
		assert.Contains(t, text, "unknown command")
		assert.Contains(t, text, "cell index is out of bounds")
		assert.Contains(t, text, "cell is already occupied")
		assert.Contains(t, text, "wins!")
		assert.Contains(t, text, "Games: 1  X wins: 1  O wins: 0  Draws: 0")

		totals, err := scores.Totals(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, totals.Games)
		require.Equal(t, 1, totals.WinsX)
		require.Equal(t, 0, totals.Draws)
		require.NotEmpty(t, totals.LastID)
	})

	t.Run("quit before any move", func(t *testing.T) {
		sess, out, scores := newTestSession(t, "Alice\nBob\nq\n")

		err := sess.Run(context.Background())
		require.NoError(t, err)

		// Then: no game was recorded and the final score line still prints
		assert.Contains(t, out.String(), "Games: 0")

		totals, err := scores.Totals(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, totals.Games)
	})

	t.Run("EOF ends the session cleanly", func(t *testing.T) {
		sess, out, _ := newTestSession(t, "Alice\nBob\n")

		err := sess.Run(context.Background())
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Games: 0")
	})

	t.Run("blank names fall back to configured defaults", func(t *testing.T) {
		sess, out, _ := newTestSession(t, "\n\nq\n")

		err := sess.Run(context.Background())
		require.NoError(t, err)

		text := out.String()
		assert.Contains(t, text, "Player 1")
		assert.Contains(t, text, "Player 2")
	})

	t.Run("canceled context stops the game loop", func(t *testing.T) {
		sess, _, _ := newTestSession(t, "Alice\nBob\n0\n1\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sess.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected command
		args     []string
	}{
		{name: "full command", line: "move 4", expected: cmdMove, args: []string{"4"}},
		{name: "single letter", line: "m 4", expected: cmdMove, args: []string{"4"}},
		{name: "bare number is a move", line: "7", expected: cmdMove, args: []string{"7"}},
		{name: "board abbreviation", line: "b", expected: cmdBoard, args: []string{}},
		{name: "score abbreviation", line: "sc", expected: cmdScore, args: []string{}},
		{name: "help", line: "help", expected: cmdHelp, args: []string{}},
		{name: "quit abbreviation", line: "q", expected: cmdQuit, args: []string{}},
		{name: "mixed case", line: "MOVE 2", expected: cmdMove, args: []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := lookupCommand(tt.line)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
			assert.Equal(t, tt.args, args)
		})
	}

	t.Run("unknown command", func(t *testing.T) {
		_, _, err := lookupCommand("frobnicate")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown command")
	})

	t.Run("empty line", func(t *testing.T) {
		_, _, err := lookupCommand("   ")

		require.Error(t, err)
	})
}

func TestParseCell(t *testing.T) {
	t.Run("valid cell", func(t *testing.T) {
		index, err := parseCell([]string{"5"})

		require.NoError(t, err)
		assert.Equal(t, 5, index)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := parseCell(nil)

		require.ErrorIs(t, err, errMoveUsage)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parseCell([]string{"five"})

		require.ErrorIs(t, err, errMoveUsage)
	})
}
