// internal/interfaces/game.go
package interfaces

import (
	"iter"

	"sand-line/internal/component"
	"sand-line/internal/event"
)

// Game is the command surface of a simulation as seen by screens and bots.
type Game interface {
	Tick(elapsed float64)
	ClickAt(x, y float64) bool
	BeginDrag(x, y float64) bool
	BeginInstallationDrag(kind component.InstallationKind, x, y float64) bool
	UpdateDrag(x, y float64)
	EndDrag() bool
	ToggleMenu() bool
	TogglePause() bool
	SetSpeedMultiplier(m float64) bool
	Restart()
	Events() iter.Seq[event.Event]
}
