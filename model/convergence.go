package model

// IsExtinct reports whether no interior cell of the grid is alive
func IsExtinct(g *Grid) bool {
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			if g.cells[row][col] == Alive {
				return false
			}
		}
	}
	return true
}

// CountRepeats counts interior positions where the cell two generations back
// matches either the current or the upcoming generation
func CountRepeats(past, current, future *Grid) (count int) {
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			p := past.cells[row][col]
			if p == current.cells[row][col] || p == future.cells[row][col] {
				count++
			}
		}
	}
	return
}

// IsConverged reports whether every interior cell repeats across the last three
// generations, which holds for still lifes and period-2 oscillators
func IsConverged(past, current, future *Grid) bool {
	return CountRepeats(past, current, future) >= InteriorCells
}
