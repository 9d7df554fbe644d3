// internal/component/visual.go
package component

// DamageFlash tints an entity for a short wall-clock time after a hit.
type DamageFlash struct {
	Timer    float64
	Duration float64
}
