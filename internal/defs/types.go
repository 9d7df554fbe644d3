// internal/defs/types.go
package defs

import (
	"image/color"

	"sand-line/internal/component"
)

// Visuals describes how a definition is drawn in the board and the buy menu.
type Visuals struct {
	Color color.RGBA
	Label string
}

// InstallationDefinition is the rule row of one installation kind.
type InstallationDefinition struct {
	Kind           component.InstallationKind
	Name           string
	Cost           int // production
	AllowedColumns int // legal in columns [0, AllowedColumns)
	Visuals        Visuals
}
