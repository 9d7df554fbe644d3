// internal/system/economy.go
package system

import (
	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/entity"
	"sand-line/internal/event"
)

// EconomySystem accrues ammunition and production once per interval of
// simulated time. Unlike the advance cadence it catches up on long gaps.
type EconomySystem struct {
	ecs         *entity.ECS
	queue       *event.Queue
	cfg         config.EconomyConfig
	interval    float64
	accumulator float64
}

func NewEconomySystem(ecs *entity.ECS, queue *event.Queue, cfg config.EconomyConfig, interval float64) *EconomySystem {
	s := &EconomySystem{ecs: ecs, queue: queue, cfg: cfg, interval: interval}
	s.Reset()
	return s
}

// Reset restores the starting pool.
func (s *EconomySystem) Reset() {
	*s.ecs.Resources = component.Resources{
		Supply:     s.cfg.StartSupply,
		Ammunition: s.cfg.StartAmmunition,
		Production: s.cfg.StartProduction,
	}
	s.accumulator = 0
}

// Update returns the number of accruals applied.
func (s *EconomySystem) Update(deltaTime float64) int {
	if deltaTime <= 0 {
		return 0
	}
	s.accumulator += deltaTime
	n := 0
	// Длинный промежуток начисляется за каждую целую секунду, остаток переносим
	for s.accumulator >= s.interval {
		s.accumulator -= s.interval
		s.ecs.Resources.Accrue(s.cfg.AmmunitionRate, s.cfg.ProductionRate)
		s.queue.Emit(event.ResourcesAccrued, *s.ecs.Resources)
		n++
	}
	return n
}

// AddSupply is the effect of a committed supply installation.
func (s *EconomySystem) AddSupply() {
	s.ecs.Resources.Supply++
}
