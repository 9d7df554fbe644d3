package app

import (
	"testing"

	"sand-line/internal/component"
	"sand-line/internal/types"
)

func place(t *testing.T, g *Game, col, row int) types.EntityID {
	t.Helper()
	x, y := float64(col*100+50), float64(row*100+50)
	if !g.ClickAt(x, y) {
		t.Fatalf("could not place at (%d,%d)", col, row)
	}
	id, _ := g.ECS.UnitAt(float64(col*100), float64(row*100), 0)
	return id
}

func dragTo(g *Game, fromCol, fromRow int, toX, toY float64) bool {
	if !g.BeginDrag(float64(fromCol*100+50), float64(fromRow*100+50)) {
		return false
	}
	g.UpdateDrag(toX, toY)
	return g.EndDrag()
}

func cellOf(g *Game, id types.EntityID) (int, int) {
	pos := g.ECS.Positions[id]
	c := g.Grid.CoordAt(pos.X, pos.Y)
	return c.Col, c.Row
}

func TestDropOnFreeCell(t *testing.T) {
	g := newTestGame(t)
	id := place(t, g, 0, 0)
	if !dragTo(g, 0, 0, 250, 350) {
		t.Fatal("drop on free cell failed")
	}
	if col, row := cellOf(g, id); col != 2 || row != 3 {
		t.Errorf("unit at (%d,%d), want (2,3)", col, row)
	}
}

func TestDragKeepsOffset(t *testing.T) {
	g := newTestGame(t)
	id := place(t, g, 1, 1)
	g.BeginDrag(110, 190) // offset (10, 90)
	g.UpdateDrag(310, 290)
	d, ok := g.Dragging()
	if !ok || d.X != 300 || d.Y != 200 {
		t.Fatalf("drag = %+v", d)
	}
	if pos := g.ECS.Positions[id]; pos.X != 100 || pos.Y != 100 {
		t.Error("unit keeps its cell until dropped")
	}
	g.EndDrag()
	if col, row := cellOf(g, id); col != 3 || row != 2 {
		t.Errorf("unit at (%d,%d), want (3,2)", col, row)
	}
}

func TestDropFallbackUp(t *testing.T) {
	g := newTestGame(t)
	place(t, g, 1, 2)
	b := place(t, g, 2, 2)
	if !dragTo(g, 2, 2, 150, 250) {
		t.Fatal("expected fallback placement")
	}
	if col, row := cellOf(g, b); col != 1 || row != 1 {
		t.Errorf("unit at (%d,%d), want one row up (1,1)", col, row)
	}
}

func TestDropFallbackOrder(t *testing.T) {
	tests := []struct {
		name     string
		blockers [][2]int
		col, row int
	}{
		{"two rows up", [][2]int{{1, 3}, {1, 2}}, 1, 1},
		{"left", [][2]int{{1, 3}, {1, 2}, {1, 1}}, 0, 3},
		{"right", [][2]int{{1, 3}, {1, 2}, {1, 1}, {0, 3}}, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			for _, b := range tt.blockers {
				place(t, g, b[0], b[1])
			}
			mover := place(t, g, 3, 5)
			if !dragTo(g, 3, 5, 150, 350) {
				t.Fatal("expected a fallback")
			}
			if col, row := cellOf(g, mover); col != tt.col || row != tt.row {
				t.Errorf("unit at (%d,%d), want (%d,%d)", col, row, tt.col, tt.row)
			}
		})
	}
}

func TestDropRevertsWhenNothingFits(t *testing.T) {
	g := newTestGame(t)
	for _, b := range [][2]int{{1, 2}, {1, 1}, {1, 0}, {0, 2}, {2, 2}} {
		place(t, g, b[0], b[1])
	}
	mover := place(t, g, 3, 5)
	if dragTo(g, 3, 5, 150, 250) {
		t.Fatal("drop should fail")
	}
	if col, row := cellOf(g, mover); col != 3 || row != 5 {
		t.Errorf("unit at (%d,%d), want start (3,5)", col, row)
	}
	mustValidate(t, g)
}

func TestDropBeyondBandClamps(t *testing.T) {
	g := newTestGame(t)
	id := place(t, g, 0, 3)
	if !dragTo(g, 0, 3, 650, 350) {
		t.Fatal("drop should clamp")
	}
	if col, row := cellOf(g, id); col != 3 || row != 3 {
		t.Errorf("unit at (%d,%d), want clamped (3,3)", col, row)
	}
}

func TestDropClampOntoTakenCellReverts(t *testing.T) {
	g := newTestGame(t)
	place(t, g, 3, 4)
	id := place(t, g, 0, 4)
	if dragTo(g, 0, 4, 650, 450) {
		t.Fatal("clamp target is taken, drop should fail")
	}
	if col, row := cellOf(g, id); col != 0 || row != 4 {
		t.Errorf("unit at (%d,%d), want start (0,4)", col, row)
	}
	mustValidate(t, g)
}

func TestDropLeftOfBoardUsesFallback(t *testing.T) {
	g := newTestGame(t)
	id := place(t, g, 2, 2)
	if !dragTo(g, 2, 2, -50, 250) {
		t.Fatal("expected the right-hand fallback to catch the unit")
	}
	if col, row := cellOf(g, id); col != 0 || row != 2 {
		t.Errorf("unit at (%d,%d), want (0,2)", col, row)
	}
}

func TestBeginDragMisses(t *testing.T) {
	g := newTestGame(t)
	g.ECS.AddUnit(component.SideEnemy, 300, 0, 100)
	if g.BeginDrag(350, 50) {
		t.Error("enemies cannot be dragged")
	}
	if g.BeginDrag(50, 50) {
		t.Error("empty cell cannot be dragged")
	}
	if g.EndDrag() {
		t.Error("EndDrag without a drag should be a no-op")
	}
	g.UpdateDrag(10, 10)
}

func TestDraggedUnitKilledMidDrag(t *testing.T) {
	g := newTestGame(t)
	id := place(t, g, 2, 0)
	g.ECS.Healths[id].Value = 25
	g.ECS.AddUnit(component.SideEnemy, 300, 0, 100)

	g.BeginDrag(250, 50)
	g.Tick(1)
	if _, ok := g.ECS.Units[id]; ok {
		t.Fatal("unit should have died")
	}
	if _, dragging := g.Dragging(); dragging {
		t.Error("drag of a dead unit should end")
	}
	if g.EndDrag() {
		t.Error("EndDrag on a dead unit should be a no-op")
	}
}

func TestSecondDragIgnoredWhileHolding(t *testing.T) {
	g := newTestGame(t)
	place(t, g, 0, 0)
	place(t, g, 0, 1)
	g.BeginDrag(50, 50)
	if g.BeginDrag(50, 150) || g.ClickAt(150, 150) {
		t.Error("commands while dragging should be ignored")
	}
}
