package othello

import "fmt"

// Size is the board edge length.
const Size = 8

// Cell is a board coordinate. Row and Col are both in [0, Size).
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// directions are the eight ray directions (dRow, dCol), iterated in this
// order by every scan so flip sets come out deterministic.
var directions = [8][2]int{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// InBounds reports whether the cell is on the board.
func (c Cell) InBounds() bool {
	return InBounds(c.Row, c.Col)
}

// String returns the cell in field notation, e.g. "a1" for (0,0) and "h8" for (7,7).
func (c Cell) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), c.Row+1)
}
