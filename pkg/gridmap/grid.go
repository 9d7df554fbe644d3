// pkg/gridmap/grid.go
package gridmap

import "math"

// Grid is a static rectangle of cells stored row-major.
type Grid struct {
	cols, rows int
	cellSize   float64
	buildable  int
	cells      []Cell
}

// Build creates a grid covering width x height pixels. Columns below
// buildableColumns form the buildable band, column 0 being the frontier.
func Build(width, height, cellSize, buildableColumns int) *Grid {
	cols, rows := width/cellSize, height/cellSize
	g := &Grid{
		cols:      cols,
		rows:      rows,
		cellSize:  float64(cellSize),
		buildable: buildableColumns,
		cells:     make([]Cell, 0, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells = append(g.cells, Cell{
				Coord: Coord{Col: col, Row: row},
				X:     float64(col * cellSize),
				Y:     float64(row * cellSize),
				Size:  float64(cellSize),
				Zone:  g.zoneFor(col),
			})
		}
	}
	return g
}

func (g *Grid) zoneFor(col int) Zone {
	switch {
	case col == 0:
		return ZoneFrontier
	case col < g.buildable:
		return ZoneBuildableRear
	default:
		return ZoneUnbuildableRear
	}
}

func (g *Grid) Cols() int             { return g.cols }
func (g *Grid) Rows() int             { return g.rows }
func (g *Grid) CellSize() float64     { return g.cellSize }
func (g *Grid) BuildableColumns() int { return g.buildable }

// Width returns the board width in pixels.
func (g *Grid) Width() float64 { return float64(g.cols) * g.cellSize }

// Height returns the board height in pixels.
func (g *Grid) Height() float64 { return float64(g.rows) * g.cellSize }

// Contains reports whether (col, row) is on the board.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// CellAt returns the cell at (col, row).
func (g *Grid) CellAt(col, row int) (*Cell, bool) {
	if !g.Contains(col, row) {
		return nil, false
	}
	return &g.cells[row*g.cols+col], true
}

// CoordAt converts a pixel point to the coordinate of the cell that would contain
// it. The result may be off the board.
func (g *Grid) CoordAt(x, y float64) Coord {
	return Coord{
		Col: int(math.Floor(x / g.cellSize)),
		Row: int(math.Floor(y / g.cellSize)),
	}
}

// FindCellAt returns the cell whose bounds contain the pixel point.
func (g *Grid) FindCellAt(x, y float64) (*Cell, bool) {
	c := g.CoordAt(x, y)
	return g.CellAt(c.Col, c.Row)
}

// Fortify sets the defense flag of a cell. It fails if the cell is off the board
// or already defended.
func (g *Grid) Fortify(col, row int) bool {
	cell, ok := g.CellAt(col, row)
	if !ok || cell.Defense {
		return false
	}
	cell.Defense = true
	return true
}

// Defended reports whether the cell under the pixel point carries the defense flag.
func (g *Grid) Defended(x, y float64) bool {
	cell, ok := g.FindCellAt(x, y)
	return ok && cell.Defense
}

// Reset clears every defense flag.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Defense = false
	}
}

// Cells returns a row-major copy of all cells.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
