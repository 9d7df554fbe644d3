package gridmap

import "testing"

func TestBuildZones(t *testing.T) {
	g := Build(1000, 600, 100, 4)
	if g.Cols() != 10 || g.Rows() != 6 {
		t.Fatalf("expected 10x6, got %dx%d", g.Cols(), g.Rows())
	}
	tests := []struct {
		col  int
		want Zone
	}{
		{0, ZoneFrontier},
		{1, ZoneBuildableRear},
		{3, ZoneBuildableRear},
		{4, ZoneUnbuildableRear},
		{9, ZoneUnbuildableRear},
	}
	for _, tt := range tests {
		for row := 0; row < g.Rows(); row++ {
			cell, ok := g.CellAt(tt.col, row)
			if !ok {
				t.Fatalf("cell (%d,%d) missing", tt.col, row)
			}
			if cell.Zone != tt.want {
				t.Errorf("cell (%d,%d) zone = %v, want %v", tt.col, row, cell.Zone, tt.want)
			}
		}
	}
	if !ZoneFrontier.Buildable() || !ZoneBuildableRear.Buildable() || ZoneUnbuildableRear.Buildable() {
		t.Error("unexpected Buildable results")
	}
}

func TestFindCellAt(t *testing.T) {
	g := Build(1000, 600, 100, 4)
	tests := []struct {
		name     string
		x, y     float64
		ok       bool
		col, row int
	}{
		{"origin", 0, 0, true, 0, 0},
		{"inside", 250, 130, true, 2, 1},
		{"right edge is exclusive", 100, 50, true, 1, 0},
		{"last pixel", 999, 599, true, 9, 5},
		{"past width", 1000, 10, false, 0, 0},
		{"negative", -1, 10, false, 0, 0},
		{"negative small fraction", -0.5, 10, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, ok := g.FindCellAt(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (cell.Col != tt.col || cell.Row != tt.row) {
				t.Errorf("got (%d,%d), want (%d,%d)", cell.Col, cell.Row, tt.col, tt.row)
			}
			if ok && !cell.Contains(tt.x, tt.y) {
				t.Error("returned cell does not contain the point")
			}
		})
	}
}

func TestFortifyOnce(t *testing.T) {
	g := Build(1000, 600, 100, 4)
	if !g.Fortify(2, 3) {
		t.Fatal("first fortify should succeed")
	}
	if g.Fortify(2, 3) {
		t.Error("second fortify of the same cell should fail")
	}
	if g.Fortify(12, 3) {
		t.Error("fortify off the board should fail")
	}
	if !g.Defended(250, 350) {
		t.Error("expected defended cell at (250,350)")
	}
	g.Reset()
	if g.Defended(250, 350) {
		t.Error("reset should clear defense flags")
	}
}

func TestCellsIsCopy(t *testing.T) {
	g := Build(300, 200, 100, 2)
	cells := g.Cells()
	cells[0].Defense = true
	if c, _ := g.CellAt(0, 0); c.Defense {
		t.Error("Cells should return a copy")
	}
	if len(cells) != 6 {
		t.Errorf("expected 6 cells, got %d", len(cells))
	}
	if cells[4].Col != 1 || cells[4].Row != 1 {
		t.Errorf("cells not row-major: %+v", cells[4].Coord)
	}
}
