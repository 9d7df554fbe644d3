// pkg/render/entity_renderer.go
package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"sand-line/internal/app"
)

const (
	unitRadiusRatio   = 0.32
	healthBarRatio    = 0.7
	healthBarHeight   = 6
	installationInset = 0.18
	ghostAlpha        = 90
	dragAlpha         = 200
)

// EntityRenderer draws units, committed installations and whatever the player
// is dragging, from a game snapshot.
type EntityRenderer struct {
	fontFace font.Face
	colors   *EntityColors
}

func NewEntityRenderer(fontFace font.Face, colors *EntityColors) *EntityRenderer {
	return &EntityRenderer{fontFace: fontFace, colors: colors}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	size := float32(s.CellSize)
	for _, inst := range s.Installations {
		if inst.Committed {
			r.drawInstallation(screen, float32(inst.X), float32(inst.Y), size, inst.Color, inst.Label)
		}
	}

	for _, u := range s.Units {
		alpha := uint8(255)
		if s.Drag != nil && s.Drag.Entity == u.ID {
			// The unit still holds its cell; draw a ghost there.
			alpha = ghostAlpha
		}
		r.drawUnit(screen, u, float32(u.X), float32(u.Y), size, alpha)
	}

	if s.Drag != nil {
		r.drawDrag(screen, s, size)
	}
}

func (r *EntityRenderer) drawDrag(screen *ebiten.Image, s app.Snapshot, size float32) {
	x, y := float32(s.Drag.X), float32(s.Drag.Y)
	if s.Drag.Installation {
		for _, inst := range s.Installations {
			if inst.ID == s.Drag.Entity {
				r.drawInstallation(screen, x, y, size, WithAlpha(inst.Color, dragAlpha), inst.Label)
				return
			}
		}
		return
	}
	for _, u := range s.Units {
		if u.ID == s.Drag.Entity {
			r.drawUnit(screen, u, x, y, size, dragAlpha)
			return
		}
	}
}

func (r *EntityRenderer) drawInstallation(screen *ebiten.Image, x, y, size float32, clr color.RGBA, label string) {
	inset := size * installationInset
	vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, clr, true)
	vector.StrokeRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, 2, DarkenColor(clr), true)
	r.drawCentered(screen, label, x+size/2, y+size/2, r.colors.TextDarkColor)
}

func (r *EntityRenderer) drawUnit(screen *ebiten.Image, u app.UnitView, x, y, size float32, alpha uint8) {
	cx, cy := x+size/2, y+size/2
	body := u.Color
	if u.Flash {
		body = LightenColor(body)
	}
	radius := size * unitRadiusRatio
	vector.DrawFilledCircle(screen, cx, cy, radius, WithAlpha(body, alpha), true)
	vector.StrokeCircle(screen, cx, cy, radius, 2, WithAlpha(DarkenColor(u.Color), alpha), true)

	barW := size * healthBarRatio
	barX := x + (size-barW)/2
	barY := y + size*0.06
	vector.DrawFilledRect(screen, barX, barY, barW, healthBarHeight, WithAlpha(r.colors.HealthBackColor, alpha), false)
	if fill := barW * HealthRatio(u.HP, u.Max); fill > 0 {
		vector.DrawFilledRect(screen, barX, barY, fill, healthBarHeight, WithAlpha(r.colors.HealthBarColor, alpha), false)
	}
	r.drawCentered(screen, strconv.Itoa(u.HP), cx, cy, WithAlpha(r.colors.TextLightColor, alpha))
}

func (r *EntityRenderer) drawCentered(screen *ebiten.Image, s string, cx, cy float32, clr color.Color) {
	if s == "" {
		return
	}
	bounds := text.BoundString(r.fontFace, s)
	x := int(cx) - bounds.Dx()/2
	y := int(cy) + bounds.Dy()/2 - bounds.Max.Y
	text.Draw(screen, s, r.fontFace, x, y, clr)
}

// HealthRatio is the filled share of a health bar, in [0, 1].
func HealthRatio(hp, maxHP int) float32 {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	return min(float32(hp)/float32(maxHP), 1)
}
