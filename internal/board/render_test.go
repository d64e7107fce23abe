package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard_String(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		expected := "   |   |   \n" +
			"---+---+---\n" +
			"   |   |   \n" +
			"---+---+---\n" +
			"   |   |   \n"

		require.Equal(t, expected, New().String())
	})

	t.Run("full board", func(t *testing.T) {
		expected := " X | X | O \n" +
			"---+---+---\n" +
			" O | O | X \n" +
			"---+---+---\n" +
			" X | O | X \n"

		require.Equal(t, expected, NewWithCells(stalemateCells).String())
	})
}
