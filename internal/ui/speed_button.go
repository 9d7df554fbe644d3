// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sand-line/internal/config"
)

// SpeedButton selects one speed multiplier. Clicking it while its multiplier
// is active returns to normal speed.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	Target        float64
	LastClickTime time.Time
	StateColors   map[float64]color.Color
}

func NewSpeedButton(x, y, size float32, target float64, stateColors map[float64]color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Target:      target,
		StateColors: stateColors,
	}
}

// Next returns the multiplier a click selects given the current one.
func (b *SpeedButton) Next(current float64) float64 {
	if current == b.Target {
		return config.SpeedNormal
	}
	return b.Target
}

// Click records the click for the bounce animation and returns Next.
func (b *SpeedButton) Click(current float64) float64 {
	b.LastClickTime = time.Now()
	return b.Next(current)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// Draw draws two chevrons pointing in the direction of the target speed.
func (b *SpeedButton) Draw(screen *ebiten.Image, current float64) {
	s := b.Size / 2 * clickScale(time.Since(b.LastClickTime).Seconds())
	clr := b.StateColors[config.SpeedNormal]
	if current == b.Target {
		clr = b.StateColors[b.Target]
	}

	dir := float32(1)
	if b.Target < config.SpeedNormal {
		dir = -1
	}
	height := s * 1.2
	for _, off := range []float32{-s * 0.5, s * 0.5} {
		tip := b.X + off + dir*s*0.5
		back := b.X + off - dir*s*0.5
		tri := [][2]float32{{back, b.Y - height/2}, {tip, b.Y}, {back, b.Y + height/2}}
		fillPolygon(screen, clr, tri...)
		strokePolygon(screen, 1, color.White, tri...)
	}
}
