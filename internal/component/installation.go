// internal/component/installation.go
package component

// InstallationKind selects the rule set and effect of an installation.
type InstallationKind string

const (
	InstallationSupply  InstallationKind = "supply"
	InstallationDefense InstallationKind = "defense"
)

// Installation is a purchasable upgrade. It is in hand until Committed.
type Installation struct {
	Kind      InstallationKind
	Cost      int
	Committed bool
}
