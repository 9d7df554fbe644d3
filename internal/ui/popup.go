// internal/ui/popup.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"sand-line/internal/config"
)

// Popup is a modal box centered on the screen with a message and one button.
type Popup struct {
	Title   string
	Message string
	Button  *Button
	Rect    image.Rectangle

	fontFace font.Face
}

// NewCapitulationPopup builds the loss dialog with its restart button.
func NewCapitulationPopup(fontFace font.Face) *Popup {
	x := (config.ScreenWidth - config.PopupWidth) / 2
	y := (config.ScreenHeight - config.PopupHeight) / 2
	rect := image.Rect(x, y, x+config.PopupWidth, y+config.PopupHeight)

	bx := x + (config.PopupWidth-config.MenuButtonWidth*2)/2
	by := rect.Max.Y - config.MenuButtonHeight - config.HUDPadding*2
	btn := NewButton(image.Rect(bx, by, bx+config.MenuButtonWidth*2, by+config.MenuButtonHeight), "Restart", fontFace)

	return &Popup{
		Title:    "The line has fallen",
		Message:  "Press R or click Restart",
		Button:   btn,
		Rect:     rect,
		fontFace: fontFace,
	}
}

func (p *Popup) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), config.OverlayColor, false)

	x, y := float32(p.Rect.Min.X), float32(p.Rect.Min.Y)
	w, h := float32(p.Rect.Dx()), float32(p.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, false)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.UIBorderColor, false)

	cx := p.Rect.Min.X + p.Rect.Dx()/2
	drawTextCentered(screen, p.Title, p.fontFace, cx, p.Rect.Min.Y+config.HUDLineHeight*2, config.TextLightColor)
	drawTextCentered(screen, p.Message, p.fontFace, cx, p.Rect.Min.Y+config.HUDLineHeight*4, config.TextLightColor)
	p.Button.Draw(screen, cursorX, cursorY)
}
