// internal/component/unit.go
package component

// Side tags a unit as belonging to the player or to the enemy.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// Unit marks an entity that occupies a cell and takes part in combat.
type Unit struct {
	Side Side
}
