// internal/system/movement.go
package system

import (
	"sand-line/internal/component"
	"sand-line/internal/entity"
	"sand-line/internal/event"
	"sand-line/pkg/gridmap"
)

// MovementSystem advances every enemy one cell to the left per advance tick.
// Enemies are processed in ascending ID order, which is spawn order.
type MovementSystem struct {
	ecs    *entity.ECS
	grid   *gridmap.Grid
	queue  *event.Queue
	combat *CombatSystem
	state  *StateSystem
	timer  timer
}

func NewMovementSystem(ecs *entity.ECS, grid *gridmap.Grid, queue *event.Queue, combat *CombatSystem, state *StateSystem, interval float64) *MovementSystem {
	return &MovementSystem{
		ecs:    ecs,
		grid:   grid,
		queue:  queue,
		combat: combat,
		state:  state,
		timer:  timer{interval: interval},
	}
}

func (s *MovementSystem) Reset() {
	s.timer.reset()
}

// Update runs one advance step when the interval has elapsed.
func (s *MovementSystem) Update(deltaTime float64) bool {
	if !s.timer.advance(deltaTime) {
		return false
	}
	s.Advance()
	return true
}

// Advance processes every enemy once. It stops at the first enemy that would
// leave the board, which capitulates the game.
func (s *MovementSystem) Advance() {
	step := s.grid.CellSize()
	for _, id := range s.ecs.SideIDs(component.SideEnemy) {
		if _, alive := s.ecs.Units[id]; !alive {
			continue // убит раньше в этом же тике
		}
		if s.ecs.Healths[id].Dead() {
			s.combat.Destroy(id)
			continue
		}

		pos := s.ecs.Positions[id]
		targetX := pos.X - step
		if targetX < 0 {
			// Враг дошёл до левого края: капитуляция, остальных не обрабатываем
			s.state.Capitulate(id)
			return
		}
		if _, blocked := s.ecs.SideAt(component.SideEnemy, targetX, pos.Y); blocked {
			continue // впереди свой, ждём
		}
		// Впереди юнит игрока: бой вместо шага
		if player, engaged := s.ecs.SideAt(component.SidePlayer, targetX, pos.Y); engaged {
			s.combat.Resolve(id, player)
			continue
		}

		pos.X = targetX
		c := s.grid.CoordAt(pos.X, pos.Y)
		s.queue.Emit(event.EnemyAdvanced, event.EntityData{ID: id, Side: component.SideEnemy, Col: c.Col, Row: c.Row})
	}
}
