package othello

// PriorityMatrix ranks board cells for the heuristic AI. Higher values are
// preferred. It has no effect on move legality.
type PriorityMatrix [Size][Size]int

// At returns the priority of a cell.
func (m PriorityMatrix) At(c Cell) int {
	return m[c.Row][c.Col]
}

// EasyPriority weights the central 6x6 uniformly and ignores the border,
// so the easy AI avoids edges without otherwise discriminating.
func EasyPriority() PriorityMatrix {
	var m PriorityMatrix
	for row := 1; row < Size-1; row++ {
		for col := 1; col < Size-1; col++ {
			m[row][col] = 1
		}
	}
	return m
}

// HardPriority encodes the classic positional ranking:
// corners above far edges, edges above the interior, and the cells
// adjacent to corners (which give corners away) ranked worst.
func HardPriority() PriorityMatrix {
	return PriorityMatrix{
		{9, 1, 5, 5, 5, 5, 1, 9},
		{1, 0, 3, 3, 3, 3, 0, 1},
		{5, 3, 4, 4, 4, 4, 3, 5},
		{5, 3, 4, 4, 4, 4, 3, 5},
		{5, 3, 4, 4, 4, 4, 3, 5},
		{5, 3, 4, 4, 4, 4, 3, 5},
		{1, 0, 3, 3, 3, 3, 0, 1},
		{9, 1, 5, 5, 5, 5, 1, 9},
	}
}
