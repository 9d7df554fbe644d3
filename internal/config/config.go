// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 600
	CellSize     = 100
	WindowTitle  = "Sand Line"

	BuildableColumns = 4
	SupplyColumns    = 1

	StartSupply     = 1
	StartAmmunition = 200
	StartProduction = 150
	AmmunitionRate  = 4 // per second per supply
	ProductionRate  = 5 // per second per supply

	UnitAmmunitionCost = 25
	UnitProductionCost = 15
	SupplyCost         = 150
	DefenseCost        = 300

	UnitHealth           = 100
	PlayerDamage         = 25
	DefendedPlayerDamage = 12
	EnemyDamage          = 40

	AdvanceInterval = 1.0 // simulated seconds
	AccrualInterval = 1.0
	MaxDeltaTime    = 5.0

	DamageFlashDuration = 0.2 // wall seconds

	SpeedSlow   = 0.2
	SpeedNormal = 1.0
	SpeedFast   = 5.0

	DefaultVolume = 100

	// Side menu
	MenuWidth      = 275
	MenuSlideSpeed = 30
	MenuSlotX      = 20
	MenuSlotSize   = 100
	SupplySlotY    = 150
	DefenseSlotY   = 270

	// HUD
	HUDPadding        = 10
	HUDLineHeight     = 16
	MenuButtonWidth   = 60
	MenuButtonHeight  = 28
	SpeedButtonSize   = 28
	SpeedButtonY      = 10
	PauseButtonRadius = 12
	PopupWidth        = 360
	PopupHeight       = 160
	SliderWidth       = 300
	SliderHeight      = 12

	TextCharWidth = 7
	TextOffsetY   = 4
	StrokeWidth   = 2.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	FrontierColor    = color.RGBA{153, 122, 74, 255}
	TrenchColor      = color.RGBA{194, 160, 104, 255}
	DirtColor        = color.RGBA{214, 190, 140, 255}
	DefenseColor     = color.RGBA{96, 96, 96, 255}
	GridLineColor    = color.RGBA{120, 96, 60, 255}
	PlayerColor      = color.RGBA{50, 100, 255, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	SupplyColor      = color.RGBA{50, 205, 50, 255}
	BunkerColor      = color.RGBA{128, 128, 128, 255}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	HealthBackColor  = color.RGBA{60, 20, 20, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{40, 40, 55, 235}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 240}
	PauseColor       = color.RGBA{70, 130, 180, 220}
	PlayColor        = color.RGBA{50, 205, 50, 220}
	OverlayColor     = color.RGBA{0, 0, 0, 150}
	UIBorderColor    = color.RGBA{240, 240, 240, 255}

	SpeedButtonColors = map[float64]color.Color{
		SpeedSlow:   color.RGBA{194, 178, 128, 255},
		SpeedNormal: color.RGBA{70, 130, 180, 220},
		SpeedFast:   color.RGBA{220, 60, 60, 220},
	}
)
