// internal/system/spawn.go
package system

import (
	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/entity"
	"sand-line/internal/event"
	"sand-line/internal/types"
	"sand-line/internal/utils"
	"sand-line/pkg/gridmap"
)

// SpawnSystem puts one enemy on the rightmost column per tick, in a random row
// that has no enemy yet.
type SpawnSystem struct {
	ecs    *entity.ECS
	grid   *gridmap.Grid
	queue  *event.Queue
	rng    *utils.PRNGService
	health int
	timer  timer
}

func NewSpawnSystem(ecs *entity.ECS, grid *gridmap.Grid, queue *event.Queue, rng *utils.PRNGService, health int, interval float64) *SpawnSystem {
	return &SpawnSystem{
		ecs:    ecs,
		grid:   grid,
		queue:  queue,
		rng:    rng,
		health: health,
		timer:  timer{interval: interval},
	}
}

func (s *SpawnSystem) Reset() {
	s.timer.reset()
}

// Update spawns at most one enemy when the interval has elapsed.
func (s *SpawnSystem) Update(deltaTime float64) (types.EntityID, bool) {
	if !s.timer.advance(deltaTime) {
		return 0, false
	}
	return s.Spawn()
}

// FreeRows returns the rows eligible for a spawn: no enemy in the row and the
// spawn cell is not taken by any unit.
func (s *SpawnSystem) FreeRows() []int {
	x := s.spawnX()
	var rows []int
	for row := 0; row < s.grid.Rows(); row++ {
		y := float64(row) * s.grid.CellSize()
		if s.ecs.EnemiesInRow(y) > 0 {
			continue
		}
		if _, taken := s.ecs.UnitAt(x, y, 0); taken {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Spawn places an enemy immediately, ignoring the timer.
func (s *SpawnSystem) Spawn() (types.EntityID, bool) {
	row, ok := utils.Choose(s.rng, s.FreeRows())
	if !ok {
		return 0, false // во всех рядах уже есть враг
	}
	col := s.grid.Cols() - 1
	x, y := s.spawnX(), float64(row)*s.grid.CellSize()

	id := s.ecs.AddUnit(component.SideEnemy, x, y, s.health)
	s.ecs.Renderables[id] = &component.Renderable{Color: config.EnemyColor}
	s.queue.Emit(event.EnemySpawned, event.EntityData{ID: id, Side: component.SideEnemy, Col: col, Row: row})
	return id, true
}

func (s *SpawnSystem) spawnX() float64 {
	return float64(s.grid.Cols()-1) * s.grid.CellSize()
}
