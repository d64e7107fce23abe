package board

import "strings"

const rowSeparator = "---+---+---\n"

// String renders the board as a fixed-width text grid. Occupied cells show
// their token, empty cells a single space.
func (that Board) String() string {
	var grid strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			grid.WriteString(rowSeparator)
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				grid.WriteByte('|')
			}

			grid.WriteByte(' ')
			grid.WriteString(that.glyph(row*3 + col))
			grid.WriteByte(' ')
		}

		grid.WriteByte('\n')
	}

	return grid.String()
}

func (that Board) glyph(index int) string {
	if that.cells[index] == emptyCell {
		return " "
	}

	return string(that.cells[index])
}
