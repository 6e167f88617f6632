package othello

// Color is the color of a player and of the stones they place.
// Board squares are not Colors: an empty square has no color at all.
type Color int

const (
	Black Color = iota
	White
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return Black + White - c
}

// String returns the lowercase color name.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}
