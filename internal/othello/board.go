package othello

import "fmt"

// square is the content of a single board cell.
type square int8

const (
	squareEmpty square = iota
	squareBlack
	squareWhite
)

func squareOf(c Color) square {
	if c == White {
		return squareWhite
	}
	return squareBlack
}

// Board is an 8x8 Othello board. The zero value is an empty board; use
// NewBoard for the standard start position. ApplyMove is the only mutator.
type Board struct {
	squares [Size][Size]square
}

// NewBoard creates a board with the four standard starting stones.
func NewBoard() *Board {
	b := &Board{}
	b.squares[3][3], b.squares[4][4] = squareWhite, squareWhite
	b.squares[3][4], b.squares[4][3] = squareBlack, squareBlack
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Get returns the color occupying the cell, or ok=false if the cell is empty.
func (b *Board) Get(c Cell) (Color, bool) {
	switch b.squares[c.Row][c.Col] {
	case squareBlack:
		return Black, true
	case squareWhite:
		return White, true
	default:
		return Black, false
	}
}

// Move is a playable cell together with the stones it would flip.
// The flip set is non-empty for every legal move and ordered by the
// direction scan order, nearest stone first within each direction.
type Move struct {
	Cell  Cell
	Flips []Cell
}

// flipsFor collects the stones color would capture by playing on c.
// It returns nil if c is occupied or no direction yields a capture.
func (b *Board) flipsFor(c Cell, color Color) []Cell {
	if b.squares[c.Row][c.Col] != squareEmpty {
		return nil
	}

	own := squareOf(color)
	opp := squareOf(color.Opponent())

	var flips []Cell
	for _, dir := range directions {
		row, col := c.Row+dir[0], c.Col+dir[1]

		runStart := len(flips)
		for InBounds(row, col) && b.squares[row][col] == opp {
			flips = append(flips, Cell{Row: row, Col: col})
			row += dir[0]
			col += dir[1]
		}

		// The run only counts if it is non-empty and anchored by an own stone.
		if !InBounds(row, col) || b.squares[row][col] != own {
			flips = flips[:runStart]
		}
	}

	return flips
}

// LegalMoves returns all legal moves for color in row-major cell order,
// each with its full flip set.
func (b *Board) LegalMoves(color Color) []Move {
	moves := make([]Move, 0)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := Cell{Row: row, Col: col}
			if flips := b.flipsFor(cell, color); len(flips) > 0 {
				moves = append(moves, Move{Cell: cell, Flips: flips})
			}
		}
	}

	return moves
}

// HasAnyLegalMove reports whether color has at least one legal move,
// without materializing the move list.
func (b *Board) HasAnyLegalMove(color Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if len(b.flipsFor(Cell{Row: row, Col: col}, color)) > 0 {
				return true
			}
		}
	}
	return false
}

// ApplyMove places a stone of color on c and flips the captured stones.
// It returns the flip set, or ErrIllegalMove if c is occupied or captures
// nothing. On error the board is unchanged.
func (b *Board) ApplyMove(c Cell, color Color) ([]Cell, error) {
	flips := b.flipsFor(c, color)
	if len(flips) == 0 {
		return nil, fmt.Errorf("%w: %s for %s", ErrIllegalMove, c, color)
	}

	own := squareOf(color)
	b.squares[c.Row][c.Col] = own
	for _, f := range flips {
		b.squares[f.Row][f.Col] = own
	}

	return flips, nil
}

// Score returns the number of black and white stones on the board.
func (b *Board) Score() (black, white int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b.squares[row][col] {
			case squareBlack:
				black++
			case squareWhite:
				white++
			}
		}
	}
	return black, white
}

// CountEmpty returns the number of empty cells.
func (b *Board) CountEmpty() int {
	black, white := b.Score()
	return Size*Size - black - white
}
