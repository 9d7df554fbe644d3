// internal/component/movement.go
package component

import "sand-line/internal/types"

// Position is the pixel top-left of an entity. Units always sit on a cell; a
// dragged unit keeps its cell until it is dropped.
type Position struct {
	X, Y float64
}

// Drag describes the entity currently held by the pointer. X and Y follow the
// pointer minus the pick-up offset.
type Drag struct {
	Entity           types.EntityID
	X, Y             float64
	OffsetX, OffsetY float64
}
