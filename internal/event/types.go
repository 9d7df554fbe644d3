// internal/event/types.go
package event

import (
	"sand-line/internal/component"
	"sand-line/internal/types"
)

const (
	EnemySpawned     EventType = "EnemySpawned"
	EnemyAdvanced    EventType = "EnemyAdvanced"
	CombatResolved   EventType = "CombatResolved"
	EnemyDestroyed   EventType = "EnemyDestroyed"
	UnitDestroyed    EventType = "UnitDestroyed"
	CardPlaced       EventType = "CardPlaced"
	CardMoved        EventType = "CardMoved"
	CardReturned     EventType = "CardReturned"
	DragStarted      EventType = "DragStarted"
	UpgradePlaced    EventType = "UpgradePlaced"
	UpgradeRejected  EventType = "UpgradeRejected"
	ResourcesAccrued EventType = "ResourcesAccrued"
	Capitulated      EventType = "Capitulated"
	Restarted        EventType = "Restarted"
	PauseToggled     EventType = "PauseToggled"
	SpeedChanged     EventType = "SpeedChanged"
	MenuToggled      EventType = "MenuToggled"
)

// AllTypes lists every event type the simulation emits.
var AllTypes = []EventType{
	EnemySpawned, EnemyAdvanced, CombatResolved, EnemyDestroyed, UnitDestroyed,
	CardPlaced, CardMoved, CardReturned, DragStarted, UpgradePlaced, UpgradeRejected,
	ResourcesAccrued, Capitulated, Restarted, PauseToggled, SpeedChanged, MenuToggled,
}

// EntityData is attached to events about one entity and the cell it ended in.
type EntityData struct {
	ID       types.EntityID
	Side     component.Side
	Col, Row int
}

// CombatData is attached to CombatResolved.
type CombatData struct {
	Enemy, Player     types.EntityID
	EnemyHP, PlayerHP int
	PlayerDamage      int
	Defended          bool
}

// RejectReason explains why an installation was discarded.
type RejectReason string

const (
	RejectNoCell   RejectReason = "no-cell"
	RejectOccupied RejectReason = "occupied"
	RejectZone     RejectReason = "zone"
	RejectFunds    RejectReason = "funds"
)

// InstallationData is attached to UpgradePlaced and UpgradeRejected.
type InstallationData struct {
	ID       types.EntityID
	Kind     component.InstallationKind
	Col, Row int
	Reason   RejectReason
}

// ToggleData is attached to PauseToggled and MenuToggled.
type ToggleData struct {
	On bool
}

// SpeedData is attached to SpeedChanged.
type SpeedData struct {
	From, To float64
}
