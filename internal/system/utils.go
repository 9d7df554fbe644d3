// internal/system/utils.go
package system

import (
	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/entity"
	"sand-line/internal/types"
)

// ApplyDamage subtracts damage from the entity's hit points and starts a hit
// flash. Hit points may go below zero; the caller removes the entity.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (remaining int, ok bool) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return 0, false
	}
	if damage < 0 {
		damage = 0
	}
	health.Value -= damage
	ecs.DamageFlashes[entityID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}
	return health.Value, true
}

// timer fires when its accumulator reaches interval and then restarts from zero.
// At most one firing is reported per call.
type timer struct {
	interval float64
	elapsed  float64
}

func (t *timer) advance(dt float64) bool {
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed = 0 // без догоняющих срабатываний
	return true
}

func (t *timer) reset() { t.elapsed = 0 }
