// internal/defs/installations.go
package defs

import (
	"sand-line/internal/component"
	"sand-line/internal/config"
)

// InstallationLibrary maps a kind to its rules.
type InstallationLibrary map[component.InstallationKind]InstallationDefinition

// MenuOrder is the order of installations in the buy menu.
var MenuOrder = []component.InstallationKind{
	component.InstallationSupply,
	component.InstallationDefense,
}

// NewInstallationLibrary builds the rule table for a board and economy.
func NewInstallationLibrary(board config.BoardConfig, economy config.EconomyConfig) InstallationLibrary {
	return InstallationLibrary{
		component.InstallationSupply: {
			Kind:           component.InstallationSupply,
			Name:           "Supply truck",
			Cost:           economy.SupplyCost,
			AllowedColumns: board.SupplyColumns,
			Visuals:        Visuals{Color: config.SupplyColor, Label: "T"},
		},
		component.InstallationDefense: {
			Kind:           component.InstallationDefense,
			Name:           "Bunker",
			Cost:           economy.DefenseCost,
			AllowedColumns: board.BuildableColumns,
			Visuals:        Visuals{Color: config.BunkerColor, Label: "B"},
		},
	}
}

// Allowed reports whether kind may be committed in column col.
func (l InstallationLibrary) Allowed(kind component.InstallationKind, col int) bool {
	def, ok := l[kind]
	return ok && col >= 0 && col < def.AllowedColumns
}
