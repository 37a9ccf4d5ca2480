package model

import (
	"strings"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

// Cell is the code stored at one grid position
type Cell int8

const (
	Dead             Cell = 0
	Alive            Cell = 1
	BorderVertical   Cell = 7
	BorderHorizontal Cell = 8
)

const (
	Height = 25
	Width  = 80

	// The interior is everything inside the one-cell border ring
	InteriorRows  = Height - 2
	InteriorCols  = Width - 2
	InteriorCells = InteriorRows * InteriorCols

	firstRow = 1
	lastRow  = Height - 2
	firstCol = 1
	lastCol  = Width - 2
)

// Grid represents the fixed-size game board, border ring included
type Grid struct {
	cells [Height][Width]Cell
}

// NewGrid creates a grid with a dead interior and the border ring drawn
func NewGrid() *Grid {
	g := &Grid{}
	g.drawBorders()
	return g
}

// drawBorders writes the marker ring; corners belong to the horizontal edges
func (g *Grid) drawBorders() {
	for col := 0; col < Width; col++ {
		g.cells[0][col] = BorderHorizontal
		g.cells[Height-1][col] = BorderHorizontal
	}
	for row := firstRow; row <= lastRow; row++ {
		g.cells[row][0] = BorderVertical
		g.cells[row][Width-1] = BorderVertical
	}
}

// IsInterior reports whether (row, col) addresses a cell the rule applies to
func IsInterior(row, col int) bool {
	return row >= firstRow && row <= lastRow && col >= firstCol && col <= lastCol
}

// Get returns the code of a cell, Dead when out of range
func (g *Grid) Get(row, col int) Cell {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return Dead
	}
	return g.cells[row][col]
}

// Alive reports whether an interior cell is alive
func (g *Grid) Alive(row, col int) bool {
	return IsInterior(row, col) && g.cells[row][col] == Alive
}

// Set sets an interior cell to alive (true) or dead (false).
// Border and out-of-range positions are left untouched.
func (g *Grid) Set(row, col int, alive bool) {
	if !IsInterior(row, col) {
		return
	}
	if alive {
		g.cells[row][col] = Alive
	} else {
		g.cells[row][col] = Dead
	}
}

// CopyFrom overwrites g with the contents of src
func (g *Grid) CopyFrom(src *Grid) {
	g.cells = src.cells
}

// Equal reports whether two grids hold the same cells
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// CountLivingCells returns the number of living interior cells
func (g *Grid) CountLivingCells() (count int) {
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			if g.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// wrap maps a coordinate that stepped off the interior band onto the opposite interior edge
func wrap(v, first, last int) int {
	switch {
	case v < first:
		return last
	case v > last:
		return first
	}
	return v
}

// CountNeighbors counts the live cells around (row, col) on the torus formed by the interior.
// The border ring is skipped: row 1 neighbors row 23 and column 1 neighbors column 78.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := wrap(row+dr, firstRow, lastRow)
			c := wrap(col+dc, firstCol, lastCol)
			if g.cells[r][c] == Alive {
				count++
			}
		}
	}
	return count
}

// Advance writes the next generation of every interior cell into dst.
// Border cells of dst are not written.
func (g *Grid) Advance(dst *Grid) {
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			alive := g.cells[row][col] == Alive
			if rules.ApplyConwayRules(g.CountNeighbors(row, col), alive) {
				dst.cells[row][col] = Alive
			} else {
				dst.cells[row][col] = Dead
			}
		}
	}
}

// NextGeneration returns a freshly allocated grid holding the next generation
func (g *Grid) NextGeneration() *Grid {
	next := NewGrid()
	g.Advance(next)
	return next
}

// String renders the grid as Height lines of Width glyphs
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			sb.WriteRune(Glyph(g.cells[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
