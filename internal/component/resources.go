// internal/component/resources.go
package component

// Cost is a price in ammunition and production.
type Cost struct {
	Ammunition int
	Production int
}

// Resources is the player's pool. All fields stay non-negative.
type Resources struct {
	Supply     int
	Ammunition int
	Production int
}

// CanAfford reports whether both components of c are covered.
func (r Resources) CanAfford(c Cost) bool {
	return r.Ammunition >= c.Ammunition && r.Production >= c.Production
}

// Spend deducts c atomically. Nothing is deducted when the pool cannot afford it.
func (r *Resources) Spend(c Cost) bool {
	if !r.CanAfford(c) {
		return false
	}
	r.Ammunition -= c.Ammunition
	r.Production -= c.Production
	return true
}

// Accrue adds one interval of income scaled by supply.
func (r *Resources) Accrue(ammunitionRate, productionRate int) {
	r.Ammunition += ammunitionRate * r.Supply
	r.Production += productionRate * r.Supply
}
