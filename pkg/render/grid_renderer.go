// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sand-line/pkg/gridmap"
)

// GridRenderer draws the board. The background is rendered once into mapImage
// and redrawn only when the set of fortified cells changes.
type GridRenderer struct {
	colors       *BoardColors
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image
	fortified    int
}

func NewGridRenderer(screenWidth, screenHeight int, colors *BoardColors) *GridRenderer {
	return &GridRenderer{colors: colors, screenWidth: screenWidth, screenHeight: screenHeight}
}

// Draw blits the cached board, refreshing it first when needed.
func (r *GridRenderer) Draw(screen *ebiten.Image, cells []gridmap.Cell) {
	if n := countFortified(cells); r.mapImage == nil || n != r.fortified {
		r.RenderMapImage(cells)
		r.fortified = n
	}
	screen.DrawImage(r.mapImage, nil)
}

// RenderMapImage repaints the background image.
func (r *GridRenderer) RenderMapImage(cells []gridmap.Cell) {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)
	for _, c := range cells {
		r.drawCell(r.mapImage, c)
	}
}

func (r *GridRenderer) drawCell(dst *ebiten.Image, c gridmap.Cell) {
	x, y, size := float32(c.X), float32(c.Y), float32(c.Size)
	vector.DrawFilledRect(dst, x, y, size, size, r.zoneColor(c.Zone), false)
	if c.Defense {
		inset := size * 0.08
		vector.StrokeRect(dst, x+inset, y+inset, size-2*inset, size-2*inset, size*0.08, r.colors.DefenseColor, true)
	}
	vector.StrokeRect(dst, x, y, size, size, r.colors.StrokeWidth/2, r.colors.GridLineColor, false)
}

func (r *GridRenderer) zoneColor(z gridmap.Zone) color.RGBA {
	switch z {
	case gridmap.ZoneFrontier:
		return r.colors.FrontierColor
	case gridmap.ZoneBuildableRear:
		return r.colors.TrenchColor
	default:
		return r.colors.DirtColor
	}
}

func countFortified(cells []gridmap.Cell) int {
	n := 0
	for _, c := range cells {
		if c.Defense {
			n++
		}
	}
	return n
}
