// internal/ui/menu_button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// MenuButton opens and closes the buy menu.
type MenuButton struct {
	*Button
}

func NewMenuButton(x, y, width, height int, fontFace font.Face) *MenuButton {
	return &MenuButton{Button: NewButton(image.Rect(x, y, x+width, y+height), "Menu", fontFace)}
}

// Draw labels the button after the action a click performs.
func (b *MenuButton) Draw(screen *ebiten.Image, menuOpen bool, cursorX, cursorY int) {
	b.Text = "Menu"
	if menuOpen {
		b.Text = "Close"
	}
	b.Button.Draw(screen, cursorX, cursorY)
}
