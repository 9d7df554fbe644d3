// internal/component/combat.go
package component

// Health holds hit points. Value may drop below zero between a hit and the
// removal of the entity; Display clamps it.
type Health struct {
	Value int
	Max   int
}

// Display returns hit points clamped to zero.
func (h Health) Display() int {
	return max(0, h.Value)
}

// Dead reports whether the entity should be removed.
func (h Health) Dead() bool {
	return h.Value <= 0
}
