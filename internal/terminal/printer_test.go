package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	// Given: a printer over a plain buffer (not a terminal)
	out := &bytes.Buffer{}
	printer := NewPrinter(out)

	// When: every output kind is written
	printer.Banner("Tic-Tac-Toe")
	printer.Line("games: %d", 3)
	printer.Error("bad cell: %d", 9)
	printer.Prompt("> ")

	// Then: the text comes through without escape sequences
	require.Equal(t, "Tic-Tac-Toe\ngames: 3\nbad cell: 9\n> ", out.String())
}
