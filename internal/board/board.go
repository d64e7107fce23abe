package board

// Token is the mark a player places on the board. The empty string marks a
// free cell; only X and O are ever stored.
type Token string

const (
	TokenX Token = "X"
	TokenO Token = "O"

	emptyCell Token = ""
)

// Cells holds the nine positions in row-major order: 0,1,2 is the top row,
// 3,4,5 the middle, 6,7,8 the bottom.
type Cells [9]Token

// WinningLines are the eight index triples that decide a game: rows top to
// bottom, columns left to right, then the two diagonals. Winner scans them
// in exactly this order.
var WinningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a value type over the nine cells. Copying it copies the cells, so
// every accessor hands out state that is independent of the original.
type Board struct {
	cells Cells
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// NewWithCells returns a board over the given cells. No validation is done,
// which allows building arbitrary scenario boards, already-won ones included.
func NewWithCells(cells Cells) Board {
	return Board{cells: cells}
}

// Cells returns a copy of the nine cells; mutating the result never affects
// the board.
func (that Board) Cells() Cells {
	return that.cells
}

// IsOccupied reports whether the cell at index holds a token. There is no
// bounds guard: an out-of-range index panics. Callers are expected to check
// IsOutOfBounds first.
func (that Board) IsOccupied(index int) bool {
	return that.cells[index] != emptyCell
}

// IsOutOfBounds reports whether index lies outside [0,8].
func (that Board) IsOutOfBounds(index int) bool {
	return index < 0 || index >= len(that.cells)
}

// Place returns the board that results from putting token at index. Anything
// other than X or O is ignored and the board comes back unchanged; that is
// the documented contract, not an omission. A valid token overwrites the
// cell unconditionally, occupied or not. An out-of-range index panics.
func (that Board) Place(token Token, index int) Board {
	if token != TokenX && token != TokenO {
		return that
	}

	that.cells[index] = token

	return that
}

// Winner returns the token owning the first uniform winning line in scan
// order, or the empty token when no line is uniform.
func (that Board) Winner() Token {
	for _, line := range WinningLines {
		a, b, c := that.cells[line[0]], that.cells[line[1]], that.cells[line[2]]
		if a != emptyCell && a == b && b == c {
			return a
		}
	}

	return emptyCell
}

// IsWon reports whether some winning line is fully owned.
func (that Board) IsWon() bool {
	return that.Winner() != emptyCell
}

// IsStalemate reports a forced draw: at most one cell still empty, nobody
// has won, and no uniform filling of the remaining cells wins either. A
// board with two or more empty cells is never a stalemate, however hopeless
// the position already is.
func (that Board) IsStalemate() bool {
	return that.emptyCount() <= 1 && !that.IsWon() && !that.IsWinPossible()
}

// IsWinPossible reports whether a win is still reachable under the coarse
// rule: the board is already won, or filling every empty cell with X wins,
// or filling every empty cell with O wins. Mixed fillings are not
// considered.
func (that Board) IsWinPossible() bool {
	if that.IsWon() {
		return true
	}

	allX, allO := that.WinScenarios()

	return allX.IsWon() || allO.IsWon()
}

// WinScenarios returns two hypothetical boards: every empty cell filled with
// X in the first and with O in the second. Occupied cells are preserved and
// the receiver is untouched.
func (that Board) WinScenarios() (Board, Board) {
	allX, allO := that, that
	for i, cell := range that.cells {
		if cell == emptyCell {
			allX.cells[i] = TokenX
			allO.cells[i] = TokenO
		}
	}

	return allX, allO
}

// IsGameOver reports whether the game reached a terminal state.
func (that Board) IsGameOver() bool {
	return that.IsWon() || that.IsStalemate()
}

func (that Board) emptyCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell == emptyCell {
			count++
		}
	}

	return count
}
