// internal/ui/side_menu.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/defs"
	"sand-line/internal/utils"
	"sand-line/pkg/render"
)

// SideMenu is the buy menu. It slides in from the left edge and holds one slot
// per installation kind.
type SideMenu struct {
	IsOpen   bool
	currentX float64
	targetX  float64
	fontFace font.Face
	library  defs.InstallationLibrary
}

func NewSideMenu(fontFace font.Face, library defs.InstallationLibrary) *SideMenu {
	return &SideMenu{
		currentX: -config.MenuWidth,
		targetX:  -config.MenuWidth,
		fontFace: fontFace,
		library:  library,
	}
}

// SetOpen starts the slide towards the open or closed position.
func (m *SideMenu) SetOpen(open bool) {
	m.IsOpen = open
	m.targetX = -config.MenuWidth
	if open {
		m.targetX = 0
	}
}

// Update advances the slide animation by one frame.
func (m *SideMenu) Update() {
	m.currentX = utils.Approach(m.currentX, m.targetX, config.MenuSlideSpeed)
}

// Visible reports whether any part of the panel is on screen.
func (m *SideMenu) Visible() bool {
	return m.currentX > -config.MenuWidth
}

func (m *SideMenu) panelRect() image.Rectangle {
	x := int(m.currentX)
	return image.Rect(x, 0, x+config.MenuWidth, config.ScreenHeight)
}

// Contains reports whether the point is over the visible panel.
func (m *SideMenu) Contains(x, y int) bool {
	return m.Visible() && image.Pt(x, y).In(m.panelRect())
}

func (m *SideMenu) slotRect(i int) image.Rectangle {
	x := int(m.currentX) + config.MenuSlotX
	y := config.SupplySlotY + i*(config.DefenseSlotY-config.SupplySlotY)
	return image.Rect(x, y, x+config.MenuSlotSize, y+config.MenuSlotSize)
}

// SlotAt returns the installation kind whose slot is under the point.
func (m *SideMenu) SlotAt(x, y int) (component.InstallationKind, bool) {
	if !m.Visible() {
		return "", false
	}
	for i, kind := range defs.MenuOrder {
		if image.Pt(x, y).In(m.slotRect(i)) {
			return kind, true
		}
	}
	return "", false
}

func (m *SideMenu) Draw(screen *ebiten.Image, res component.Resources) {
	if !m.Visible() {
		return
	}
	p := m.panelRect()
	vector.DrawFilledRect(screen, float32(p.Min.X), 0, float32(p.Dx()), float32(p.Dy()), config.PanelColor, false)
	vector.StrokeRect(screen, float32(p.Min.X), 0, float32(p.Dx()), float32(p.Dy()), config.StrokeWidth, config.UIBorderColor, false)
	text.Draw(screen, "Installations", m.fontFace, p.Min.X+config.MenuSlotX, config.SupplySlotY-config.HUDLineHeight*2, config.TextLightColor)

	for i, kind := range defs.MenuOrder {
		def := m.library[kind]
		r := m.slotRect(i)
		clr := def.Visuals.Color
		if res.Production < def.Cost {
			clr = render.DarkenColor(clr)
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, true)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.UIBorderColor, true)
		c := r.Min.Add(r.Size().Div(2))
		drawTextCentered(screen, def.Visuals.Label, m.fontFace, c.X, c.Y, config.TextDarkColor)

		tx := r.Max.X + config.HUDPadding
		text.Draw(screen, def.Name, m.fontFace, tx, r.Min.Y+config.HUDLineHeight, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("%d production", def.Cost), m.fontFace, tx, r.Min.Y+config.HUDLineHeight*2, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("columns 1-%d", def.AllowedColumns), m.fontFace, tx, r.Min.Y+config.HUDLineHeight*3, config.TextLightColor)
	}
}
