// internal/ui/slider.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"sand-line/internal/config"
)

var sliderFillColor = color.RGBA{70, 100, 120, 220}

// Slider edits an integer in [0, 100] by pressing or dragging on its bar.
type Slider struct {
	X, Y          float32
	Width, Height float32
	Label         string
	Value         int

	dragging bool
}

func NewSlider(x, y, width, height float32, label string, value int) *Slider {
	return &Slider{X: x, Y: y, Width: width, Height: height, Label: label, Value: clampPercent(value)}
}

// Contains reports whether the point is on the bar.
func (s *Slider) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= s.X && fx <= s.X+s.Width && fy >= s.Y-s.Height && fy <= s.Y+s.Height*2
}

// ValueAt maps a horizontal cursor position to a value.
func (s *Slider) ValueAt(x int) int {
	if s.Width <= 0 {
		return 0
	}
	ratio := (float32(x) - s.X) / s.Width
	return clampPercent(int(ratio*100 + 0.5))
}

// Update feeds the mouse state and reports whether the value changed.
func (s *Slider) Update(cursorX, cursorY int, pressed, justPressed bool) bool {
	if justPressed && s.Contains(cursorX, cursorY) {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}
	v := s.ValueAt(cursorX)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

func (s *Slider) Draw(screen *ebiten.Image, fontFace font.Face) {
	vector.StrokeRect(screen, s.X, s.Y, s.Width, s.Height, 1, color.White, true)
	if fill := (s.Width - 2) * float32(s.Value) / 100; fill > 0 {
		vector.DrawFilledRect(screen, s.X+1, s.Y+1, fill, s.Height-2, sliderFillColor, true)
	}
	knob := s.X + s.Width*float32(s.Value)/100
	vector.DrawFilledCircle(screen, knob, s.Y+s.Height/2, s.Height, config.TextLightColor, true)
	text.Draw(screen, fmt.Sprintf("%s: %d", s.Label, s.Value), fontFace, int(s.X), int(s.Y)-config.HUDPadding, config.TextLightColor)
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
