// internal/app/drag.go
package app

import (
	"sand-line/internal/component"
	"sand-line/internal/event"
	"sand-line/internal/types"
	"sand-line/pkg/gridmap"
)

// dropFallbacks are tried in order when the cell under a dropped unit is taken:
// one row up, two rows up, one column left, one column right.
var dropFallbacks = []gridmap.Coord{
	{Col: 0, Row: -1},
	{Col: 0, Row: -2},
	{Col: -1, Row: 0},
	{Col: 1, Row: 0},
}

// BeginDrag picks up the player unit under the pointer.
func (g *Game) BeginDrag(x, y float64) bool {
	if g.Capitulated() || g.drag != nil {
		return false
	}
	id, ok := g.ECS.UnitContaining(component.SidePlayer, x, y, g.Grid.CellSize())
	if !ok {
		return false
	}
	pos := g.ECS.Positions[id]
	g.startDrag(id, pos.X, pos.Y, x-pos.X, y-pos.Y)
	return true
}

// BeginInstallationDrag creates an installation in hand centered on the
// pointer and closes the buy menu. Nothing is paid until it is committed.
func (g *Game) BeginInstallationDrag(kind component.InstallationKind, x, y float64) bool {
	if g.Capitulated() || g.drag != nil {
		return false
	}
	def, ok := g.Installations[kind]
	if !ok {
		return false
	}
	half := g.Grid.CellSize() / 2
	id := g.ECS.AddInstallation(kind, def.Cost, x-half, y-half)
	g.ECS.Renderables[id] = &component.Renderable{Color: def.Visuals.Color, Label: def.Visuals.Label}
	g.startDrag(id, x-half, y-half, half, half)
	if g.menuOpen {
		g.ToggleMenu()
	}
	return true
}

func (g *Game) startDrag(id types.EntityID, x, y, offsetX, offsetY float64) {
	g.drag = &component.Drag{Entity: id, X: x, Y: y, OffsetX: offsetX, OffsetY: offsetY}
	g.events.Emit(event.DragStarted, event.EntityData{ID: id})
}

// UpdateDrag moves the held entity with the pointer. No validation happens
// until the drop.
func (g *Game) UpdateDrag(x, y float64) {
	if g.drag == nil {
		return
	}
	if !g.ECS.Exists(g.drag.Entity) {
		g.drag = nil
		return
	}
	g.drag.X = x - g.drag.OffsetX
	g.drag.Y = y - g.drag.OffsetY
}

// EndDrag drops the held entity and reports whether it landed somewhere new.
func (g *Game) EndDrag() bool {
	if g.drag == nil {
		return false
	}
	d := *g.drag
	g.drag = nil
	if !g.ECS.Exists(d.Entity) {
		return false
	}
	// Клетку выбираем по центру перетаскиваемого прямоугольника
	half := g.Grid.CellSize() / 2
	cx, cy := d.X+half, d.Y+half
	if _, ok := g.ECS.Installations[d.Entity]; ok {
		return g.commitInstallation(d.Entity, cx, cy)
	}
	return g.dropUnit(d.Entity, cx, cy)
}

// dropUnit moves a unit to the cell under its center or to the first free
// fallback. Cells past the buildable band clamp to its last column; when that
// is taken too the unit stays where it was.
func (g *Game) dropUnit(id types.EntityID, cx, cy float64) bool {
	pos := g.ECS.Positions[id]
	target, ok := g.findDropCell(id, cx, cy)
	// За полосой окопов прижимаем к последней колонке
	if ok && target.Col >= g.Grid.BuildableColumns() {
		clamped, _ := g.Grid.CellAt(g.Grid.BuildableColumns()-1, target.Row)
		if g.occupied(clamped, id) {
			ok = false
		} else {
			target = clamped
		}
	}

	if !ok {
		// Возврат на исходную клетку, позиция не менялась
		c := g.Grid.CoordAt(pos.X, pos.Y)
		g.events.Emit(event.CardReturned, event.EntityData{ID: id, Side: component.SidePlayer, Col: c.Col, Row: c.Row})
		return false
	}
	pos.X, pos.Y = target.X, target.Y
	g.events.Emit(event.CardMoved, event.EntityData{ID: id, Side: component.SidePlayer, Col: target.Col, Row: target.Row})
	return true
}

func (g *Game) findDropCell(id types.EntityID, cx, cy float64) (*gridmap.Cell, bool) {
	if cell, ok := g.Grid.FindCellAt(cx, cy); ok && !g.occupied(cell, id) {
		return cell, true
	}
	c := g.Grid.CoordAt(cx, cy)
	for _, d := range dropFallbacks {
		cell, ok := g.Grid.CellAt(c.Col+d.Col, c.Row+d.Row)
		if ok && !g.occupied(cell, id) {
			return cell, true
		}
	}
	return nil, false
}

func (g *Game) occupied(cell *gridmap.Cell, exclude types.EntityID) bool {
	_, taken := g.ECS.UnitAt(cell.X, cell.Y, exclude)
	return taken
}

// cancelDrag drops whatever is held without resolving it. An installation in
// hand is discarded.
func (g *Game) cancelDrag() {
	if g.drag == nil {
		return
	}
	if _, ok := g.ECS.Installations[g.drag.Entity]; ok {
		g.ECS.Remove(g.drag.Entity)
	}
	g.drag = nil
}
