// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"sand-line/internal/component"
	"sand-line/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Healths       map[types.EntityID]*component.Health
	Units         map[types.EntityID]*component.Unit
	Installations map[types.EntityID]*component.Installation
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
	GameState     *component.GameState
	Resources     *component.Resources
}

func NewECS() *ECS {
	ecs := &ECS{
		GameState: &component.GameState{Phase: component.PhasePlaying, Speed: 1},
		Resources: &component.Resources{},
	}
	ecs.Clear()
	return ecs
}

// Clear removes every entity and restarts ID allocation. Singletons survive.
func (ecs *ECS) Clear() {
	ecs.NextID = 1
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Healths = make(map[types.EntityID]*component.Health)
	ecs.Units = make(map[types.EntityID]*component.Unit)
	ecs.Installations = make(map[types.EntityID]*component.Installation)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.DamageFlashes = make(map[types.EntityID]*component.DamageFlash)
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddUnit creates a unit at a cell-aligned position.
func (ecs *ECS) AddUnit(side component.Side, x, y float64, hp int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Units[id] = &component.Unit{Side: side}
	return id
}

// AddInstallation creates an installation in hand.
func (ecs *ECS) AddInstallation(kind component.InstallationKind, cost int, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Installations[id] = &component.Installation{Kind: kind, Cost: cost}
	return id
}

// Remove deletes every component of id. Removing a missing entity is a no-op.
func (ecs *ECS) Remove(id types.EntityID) bool {
	_, isUnit := ecs.Units[id]
	_, isInstallation := ecs.Installations[id]
	delete(ecs.Positions, id)
	delete(ecs.Healths, id)
	delete(ecs.Units, id)
	delete(ecs.Installations, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
	return isUnit || isInstallation
}

// Exists reports whether id is a live unit or installation.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, isUnit := ecs.Units[id]
	_, isInstallation := ecs.Installations[id]
	return isUnit || isInstallation
}

// UnitIDs returns all unit IDs in ascending order.
func (ecs *ECS) UnitIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Units))
}

// SideIDs returns the IDs of one side in ascending order.
func (ecs *ECS) SideIDs(side component.Side) []types.EntityID {
	var ids []types.EntityID
	for id, u := range ecs.Units {
		if u.Side == side {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// InstallationIDs returns all installation IDs in ascending order.
func (ecs *ECS) InstallationIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Installations))
}

// UnitAt returns a unit positioned exactly at (x, y), ignoring exclude.
func (ecs *ECS) UnitAt(x, y float64, exclude types.EntityID) (types.EntityID, bool) {
	for _, id := range ecs.UnitIDs() {
		if id == exclude {
			continue
		}
		if pos := ecs.Positions[id]; pos.X == x && pos.Y == y {
			return id, true
		}
	}
	return 0, false
}

// SideAt returns a unit of the given side positioned exactly at (x, y).
func (ecs *ECS) SideAt(side component.Side, x, y float64) (types.EntityID, bool) {
	for _, id := range ecs.SideIDs(side) {
		if pos := ecs.Positions[id]; pos.X == x && pos.Y == y {
			return id, true
		}
	}
	return 0, false
}

// UnitContaining returns a unit of side whose size x size rect contains the point.
func (ecs *ECS) UnitContaining(side component.Side, px, py, size float64) (types.EntityID, bool) {
	for _, id := range ecs.SideIDs(side) {
		pos := ecs.Positions[id]
		if px >= pos.X && px < pos.X+size && py >= pos.Y && py < pos.Y+size {
			return id, true
		}
	}
	return 0, false
}

// EnemiesInRow counts enemies whose top edge is y.
func (ecs *ECS) EnemiesInRow(y float64) int {
	n := 0
	for id, u := range ecs.Units {
		if u.Side == component.SideEnemy && ecs.Positions[id].Y == y {
			n++
		}
	}
	return n
}

// CommittedInstallationAt returns the committed installation at (x, y).
func (ecs *ECS) CommittedInstallationAt(x, y float64) (types.EntityID, bool) {
	for _, id := range ecs.InstallationIDs() {
		inst := ecs.Installations[id]
		if !inst.Committed {
			continue
		}
		if pos := ecs.Positions[id]; pos.X == x && pos.Y == y {
			return id, true
		}
	}
	return 0, false
}

// CheckInvariants reports shared cells and units off the cell lattice.
func (ecs *ECS) CheckInvariants(cellSize float64) error {
	var errs []error
	units := make(map[component.Position]types.EntityID)
	for _, id := range ecs.UnitIDs() {
		pos := *ecs.Positions[id]
		if other, ok := units[pos]; ok {
			errs = append(errs, fmt.Errorf("units %d and %d share cell at (%g,%g)", other, id, pos.X, pos.Y))
		}
		units[pos] = id
		if !aligned(pos, cellSize) {
			errs = append(errs, fmt.Errorf("unit %d not cell aligned at (%g,%g)", id, pos.X, pos.Y))
		}
		if _, ok := ecs.Healths[id]; !ok {
			errs = append(errs, fmt.Errorf("unit %d has no health", id))
		}
	}
	installations := make(map[component.Position]types.EntityID)
	for _, id := range ecs.InstallationIDs() {
		if !ecs.Installations[id].Committed {
			continue
		}
		pos := *ecs.Positions[id]
		if other, ok := installations[pos]; ok {
			errs = append(errs, fmt.Errorf("installations %d and %d share cell at (%g,%g)", other, id, pos.X, pos.Y))
		}
		installations[pos] = id
	}
	r := ecs.Resources
	if r.Supply < 1 || r.Ammunition < 0 || r.Production < 0 {
		errs = append(errs, fmt.Errorf("resource pool out of range: %+v", *r))
	}
	return errors.Join(errs...)
}

func aligned(pos component.Position, cellSize float64) bool {
	return pos.X == float64(int(pos.X/cellSize))*cellSize && pos.Y == float64(int(pos.Y/cellSize))*cellSize
}
