// internal/component/render.go
package component

import "image/color"

// Renderable is the flat visual of an entity.
type Renderable struct {
	Color color.RGBA
	Label string
}
