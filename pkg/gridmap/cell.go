// pkg/gridmap/cell.go
package gridmap

// Zone is derived from the column alone.
type Zone int

const (
	ZoneFrontier Zone = iota
	ZoneBuildableRear
	ZoneUnbuildableRear
)

// Buildable reports whether player units may be created in the zone.
func (z Zone) Buildable() bool {
	return z == ZoneFrontier || z == ZoneBuildableRear
}

func (z Zone) String() string {
	switch z {
	case ZoneFrontier:
		return "frontier"
	case ZoneBuildableRear:
		return "buildable-rear"
	case ZoneUnbuildableRear:
		return "unbuildable-rear"
	}
	return "unknown"
}

// Coord addresses a cell.
type Coord struct {
	Col, Row int
}

// Cell is a single tile. X and Y are the pixel top-left corner.
type Cell struct {
	Coord
	X, Y    float64
	Size    float64
	Zone    Zone
	Defense bool
}

// Contains reports whether the pixel point lies inside the half-open cell rect.
func (c Cell) Contains(x, y float64) bool {
	return x >= c.X && x < c.X+c.Size && y >= c.Y && y < c.Y+c.Size
}

// Center returns the pixel center of the cell.
func (c Cell) Center() (float64, float64) {
	return c.X + c.Size/2, c.Y + c.Size/2
}
