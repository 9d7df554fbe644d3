package system

import (
	"testing"

	"sand-line/internal/config"
	"sand-line/internal/entity"
	"sand-line/internal/event"
	"sand-line/internal/utils"
	"sand-line/pkg/gridmap"
)

type fixture struct {
	ecs      *entity.ECS
	grid     *gridmap.Grid
	queue    *event.Queue
	economy  *EconomySystem
	spawn    *SpawnSystem
	combat   *CombatSystem
	movement *MovementSystem
	state    *StateSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	f := &fixture{
		ecs:   entity.NewECS(),
		grid:  gridmap.Build(cfg.Board.Width, cfg.Board.Height, cfg.Board.CellSize, cfg.Board.BuildableColumns),
		queue: event.NewQueue(),
	}
	f.state = NewStateSystem(f.ecs, f.queue)
	f.economy = NewEconomySystem(f.ecs, f.queue, cfg.Economy, 1)
	f.spawn = NewSpawnSystem(f.ecs, f.grid, f.queue, utils.NewPRNGService(3), cfg.Combat.UnitHealth, 1)
	f.combat = NewCombatSystem(f.ecs, f.grid, f.queue, cfg.Combat)
	f.movement = NewMovementSystem(f.ecs, f.grid, f.queue, f.combat, f.state, 1)
	return f
}

func (f *fixture) drain() []event.Event {
	var out []event.Event
	for e := range f.queue.Drain() {
		out = append(out, e)
	}
	return out
}

func countType(events []event.Event, t event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
