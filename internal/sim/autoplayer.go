// internal/sim/autoplayer.go
package sim

import (
	"sand-line/internal/app"
	"sand-line/internal/component"
)

// Autoplayer is a simple scripted opponent used by headless runs. Each turn it
// restarts a lost game, buys supply up to a target, blocks every row that has
// an enemy and fortifies the front line when production allows.
type Autoplayer struct {
	SupplyTarget int
}

func NewAutoplayer() *Autoplayer {
	return &Autoplayer{SupplyTarget: 3}
}

// Turn issues at most one command per kind and reports whether it did anything.
func (a *Autoplayer) Turn(g *app.Game) bool {
	if g.Capitulated() {
		g.Restart()
		return true
	}
	acted := false
	if a.buySupply(g) {
		acted = true
	}
	if a.blockRows(g) {
		acted = true
	}
	if a.fortify(g) {
		acted = true
	}
	return acted
}

func (a *Autoplayer) buySupply(g *app.Game) bool {
	r := g.Resources()
	def := g.Installations[component.InstallationSupply]
	if r.Supply >= a.SupplyTarget || r.Production < def.Cost {
		return false
	}
	for row := 0; row < g.Grid.Rows(); row++ {
		cell, _ := g.Grid.CellAt(0, row)
		if _, taken := g.ECS.CommittedInstallationAt(cell.X, cell.Y); taken {
			continue
		}
		x, y := cell.Center()
		return a.dropInstallation(g, component.InstallationSupply, x, y)
	}
	return false
}

// blockRows places a unit on the last buildable column of each row with an
// enemy and no defender.
func (a *Autoplayer) blockRows(g *app.Game) bool {
	front := g.Grid.BuildableColumns() - 1
	acted := false
	for row := 0; row < g.Grid.Rows(); row++ {
		cell, _ := g.Grid.CellAt(front, row)
		if g.ECS.EnemiesInRow(cell.Y) == 0 || a.rowDefended(g, cell.Y) {
			continue
		}
		x, y := cell.Center()
		if g.ClickAt(x, y) {
			acted = true
		}
	}
	return acted
}

func (a *Autoplayer) rowDefended(g *app.Game, y float64) bool {
	for _, id := range g.ECS.SideIDs(component.SidePlayer) {
		if g.ECS.Positions[id].Y == y {
			return true
		}
	}
	return false
}

func (a *Autoplayer) fortify(g *app.Game) bool {
	def := g.Installations[component.InstallationDefense]
	if g.Resources().Production < def.Cost+def.Cost/2 {
		return false
	}
	for _, id := range g.ECS.SideIDs(component.SidePlayer) {
		pos := g.ECS.Positions[id]
		if g.Grid.Defended(pos.X, pos.Y) {
			continue
		}
		if _, taken := g.ECS.CommittedInstallationAt(pos.X, pos.Y); taken {
			continue
		}
		c := g.Grid.CoordAt(pos.X, pos.Y)
		cell, ok := g.Grid.CellAt(c.Col, c.Row)
		if !ok || !g.Installations.Allowed(component.InstallationDefense, c.Col) {
			continue
		}
		x, y := cell.Center()
		return a.dropInstallation(g, component.InstallationDefense, x, y)
	}
	return false
}

func (a *Autoplayer) dropInstallation(g *app.Game, kind component.InstallationKind, x, y float64) bool {
	if !g.BeginInstallationDrag(kind, x, y) {
		return false
	}
	return g.EndDrag()
}
