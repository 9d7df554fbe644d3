// internal/app/snapshot.go
package app

import (
	"image/color"

	"sand-line/internal/component"
	"sand-line/internal/types"
	"sand-line/pkg/gridmap"
)

type UnitView struct {
	ID       types.EntityID
	Side     component.Side
	X, Y     float64
	Col, Row int
	HP, Max  int
	Flash    bool
	Color    color.RGBA
}

type InstallationView struct {
	ID        types.EntityID
	Kind      component.InstallationKind
	X, Y      float64
	Committed bool
	Color     color.RGBA
	Label     string
}

type DragView struct {
	Entity       types.EntityID
	X, Y         float64
	Installation bool
	Kind         component.InstallationKind
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Cells         []gridmap.Cell
	CellSize      float64
	Units         []UnitView
	Installations []InstallationView
	Resources     component.Resources
	Status        component.Status
	Speed         float64
	Drag          *DragView
	MenuOpen      bool
	GameTime      float64
	SimTime       float64
}

// Snapshot copies the current state. Entities are ordered by ID.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Cells:     g.Grid.Cells(),
		CellSize:  g.Grid.CellSize(),
		Resources: *g.ECS.Resources,
		Status:    g.Status(),
		Speed:     g.Speed(),
		MenuOpen:  g.menuOpen,
		GameTime:  g.gameTime,
		SimTime:   g.simTime,
	}
	for _, id := range g.ECS.UnitIDs() {
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		c := g.Grid.CoordAt(pos.X, pos.Y)
		_, flash := g.ECS.DamageFlashes[id]
		view := UnitView{
			ID:    id,
			Side:  g.ECS.Units[id].Side,
			X:     pos.X,
			Y:     pos.Y,
			Col:   c.Col,
			Row:   c.Row,
			HP:    health.Display(),
			Max:   health.Max,
			Flash: flash,
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color = r.Color
		}
		s.Units = append(s.Units, view)
	}
	for _, id := range g.ECS.InstallationIDs() {
		pos := g.ECS.Positions[id]
		inst := g.ECS.Installations[id]
		view := InstallationView{
			ID:        id,
			Kind:      inst.Kind,
			X:         pos.X,
			Y:         pos.Y,
			Committed: inst.Committed,
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color, view.Label = r.Color, r.Label
		}
		s.Installations = append(s.Installations, view)
	}
	if g.drag != nil {
		d := &DragView{Entity: g.drag.Entity, X: g.drag.X, Y: g.drag.Y}
		if inst, ok := g.ECS.Installations[g.drag.Entity]; ok {
			d.Installation = true
			d.Kind = inst.Kind
		}
		s.Drag = d
	}
	return s
}
