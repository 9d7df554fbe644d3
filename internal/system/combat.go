// internal/system/combat.go
package system

import (
	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/entity"
	"sand-line/internal/event"
	"sand-line/internal/types"
	"sand-line/pkg/gridmap"
)

// CombatSystem resolves a collision between an enemy and the player unit in
// front of it. Both hits land at once.
type CombatSystem struct {
	ecs   *entity.ECS
	grid  *gridmap.Grid
	queue *event.Queue
	cfg   config.CombatConfig
}

func NewCombatSystem(ecs *entity.ECS, grid *gridmap.Grid, queue *event.Queue, cfg config.CombatConfig) *CombatSystem {
	return &CombatSystem{ecs: ecs, grid: grid, queue: queue, cfg: cfg}
}

// Resolve applies one exchange of damage and removes whoever dropped to zero.
func (s *CombatSystem) Resolve(enemyID, playerID types.EntityID) {
	pos := s.ecs.Positions[playerID]
	defended := s.grid.Defended(pos.X, pos.Y)
	damage := s.cfg.PlayerDamage
	if defended {
		damage = s.cfg.DefendedPlayerDamage
	}

	// Урон одновременный, смерть проверяем после обоих ударов
	playerHP, _ := ApplyDamage(s.ecs, playerID, damage)
	enemyHP, _ := ApplyDamage(s.ecs, enemyID, s.cfg.EnemyDamage)
	s.queue.Emit(event.CombatResolved, event.CombatData{
		Enemy:        enemyID,
		Player:       playerID,
		EnemyHP:      max(0, enemyHP),
		PlayerHP:     max(0, playerHP),
		PlayerDamage: damage,
		Defended:     defended,
	})

	if playerHP <= 0 {
		s.Destroy(playerID)
	}
	if enemyHP <= 0 {
		s.Destroy(enemyID)
	}
}

// Destroy removes a unit and reports it.
func (s *CombatSystem) Destroy(id types.EntityID) {
	unit, ok := s.ecs.Units[id]
	if !ok {
		return
	}
	pos := s.ecs.Positions[id]
	c := s.grid.CoordAt(pos.X, pos.Y)
	data := event.EntityData{ID: id, Side: unit.Side, Col: c.Col, Row: c.Row}
	s.ecs.Remove(id)

	if unit.Side == component.SideEnemy {
		s.queue.Emit(event.EnemyDestroyed, data)
	} else {
		s.queue.Emit(event.UnitDestroyed, data)
	}
}
