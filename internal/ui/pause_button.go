// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton shows two bars while running and a play triangle while paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	s := b.Size * clickScale(time.Since(b.LastClickTime).Seconds())

	if b.IsPaused {
		tri := [][2]float32{
			{b.X - s*0.8, b.Y - s},
			{b.X - s*0.8, b.Y + s},
			{b.X + s, b.Y},
		}
		fillPolygon(screen, b.PlayColor, tri...)
		strokePolygon(screen, 1, color.White, tri...)
		return
	}

	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	left := b.X - width - spacing/2
	right := b.X + spacing/2
	top := b.Y - height/2
	vector.DrawFilledRect(screen, left, top, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, left, top, width, height, 1, color.White, true)
	vector.DrawFilledRect(screen, right, top, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, right, top, width, height, 1, color.White, true)
}

// IsClicked uses a circle for hit testing.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*1.5
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
