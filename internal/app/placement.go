// internal/app/placement.go
package app

import (
	"go.uber.org/zap"

	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/event"
	"sand-line/internal/logs"
	"sand-line/internal/types"
	"sand-line/pkg/gridmap"
)

type installationEffect func(g *Game, cell *gridmap.Cell)

// installationEffects applies a committed installation to the board.
var installationEffects = map[component.InstallationKind]installationEffect{
	component.InstallationSupply: func(g *Game, _ *gridmap.Cell) {
		g.EconomySystem.AddSupply()
	},
	component.InstallationDefense: func(g *Game, cell *gridmap.Cell) {
		g.Grid.Fortify(cell.Col, cell.Row)
	},
}

// UnitCost is the price of a new player unit.
func (g *Game) UnitCost() component.Cost {
	return component.Cost{
		Ammunition: g.Config.Economy.UnitAmmunitionCost,
		Production: g.Config.Economy.UnitProductionCost,
	}
}

// ClickAt creates a player unit in a free buildable cell when affordable.
// Otherwise a click on a player unit picks it up.
func (g *Game) ClickAt(x, y float64) bool {
	if g.Capitulated() || g.drag != nil {
		return false
	}
	if cell, ok := g.Grid.FindCellAt(x, y); ok && g.canPlaceUnit(cell) {
		g.placeUnit(cell)
		return true
	}
	return g.BeginDrag(x, y)
}

func (g *Game) canPlaceUnit(cell *gridmap.Cell) bool {
	if !cell.Zone.Buildable() {
		return false
	}
	if _, taken := g.ECS.UnitAt(cell.X, cell.Y, 0); taken {
		return false
	}
	return g.ECS.Resources.CanAfford(g.UnitCost())
}

func (g *Game) placeUnit(cell *gridmap.Cell) types.EntityID {
	g.ECS.Resources.Spend(g.UnitCost())
	id := g.ECS.AddUnit(component.SidePlayer, cell.X, cell.Y, g.Config.Combat.UnitHealth)
	g.ECS.Renderables[id] = &component.Renderable{Color: config.PlayerColor}
	g.events.Emit(event.CardPlaced, event.EntityData{ID: id, Side: component.SidePlayer, Col: cell.Col, Row: cell.Row})
	return id
}

// commitInstallation resolves the drop of an installation whose center is at
// (cx, cy). Rejected installations are destroyed without refund.
func (g *Game) commitInstallation(id types.EntityID, cx, cy float64) bool {
	inst := g.ECS.Installations[id]
	data := event.InstallationData{ID: id, Kind: inst.Kind}

	cell, ok := g.Grid.FindCellAt(cx, cy)
	if ok {
		data.Col, data.Row = cell.Col, cell.Row
	}
	switch {
	case !ok:
		data.Reason = event.RejectNoCell
	case g.hasInstallation(cell):
		data.Reason = event.RejectOccupied
	case !g.Installations.Allowed(inst.Kind, cell.Col):
		data.Reason = event.RejectZone
	case g.ECS.Resources.Production < inst.Cost:
		data.Reason = event.RejectFunds
	}
	if data.Reason != "" {
		g.ECS.Remove(id)
		g.events.Emit(event.UpgradeRejected, data)
		logs.Debug("installation rejected",
			zap.String("kind", string(inst.Kind)),
			zap.String("reason", string(data.Reason)),
			zap.Int("col", data.Col),
			zap.Int("row", data.Row))
		return false
	}

	pos := g.ECS.Positions[id]
	pos.X, pos.Y = cell.X, cell.Y
	installationEffects[inst.Kind](g, cell)
	g.ECS.Resources.Spend(component.Cost{Production: inst.Cost})
	inst.Committed = true
	g.events.Emit(event.UpgradePlaced, data)
	return true
}

func (g *Game) hasInstallation(cell *gridmap.Cell) bool {
	_, ok := g.ECS.CommittedInstallationAt(cell.X, cell.Y)
	return ok
}
