// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"sand-line/internal/component"
	"sand-line/internal/config"
)

// StatusColors maps the game status to the color of the indicator dot.
var StatusColors = map[component.Status]color.RGBA{
	component.StatusPlaying:     config.PlayColor,
	component.StatusPaused:      config.PauseColor,
	component.StatusCapitulated: config.EnemyColor,
}

// ResourceIndicator shows the resource pool and a status dot that pulses when
// the status changes.
type ResourceIndicator struct {
	X, Y       float32
	Radius     float32
	fontFace   font.Face
	lastStatus component.Status
	changedAt  time.Time
}

func NewResourceIndicator(x, y, radius float32, fontFace font.Face) *ResourceIndicator {
	return &ResourceIndicator{X: x, Y: y, Radius: radius, fontFace: fontFace}
}

// Lines returns the text rows shown by the indicator.
func (i *ResourceIndicator) Lines(r component.Resources, status component.Status) []string {
	return []string{
		fmt.Sprintf("Supply: %d", r.Supply),
		fmt.Sprintf("Ammunition: %d", r.Ammunition),
		fmt.Sprintf("Production: %d", r.Production),
		status.String(),
	}
}

func (i *ResourceIndicator) Draw(screen *ebiten.Image, r component.Resources, status component.Status) {
	if status != i.lastStatus {
		i.lastStatus = status
		i.changedAt = time.Now()
	}
	radius := i.Radius * clickScale(time.Since(i.changedAt).Seconds())
	vector.DrawFilledCircle(screen, i.X+i.Radius, i.Y+i.Radius, radius, StatusColors[status], true)
	vector.StrokeCircle(screen, i.X+i.Radius, i.Y+i.Radius, radius, 1, color.White, true)

	x := int(i.X + i.Radius*2 + config.HUDPadding)
	y := int(i.Y) + config.HUDLineHeight - config.TextOffsetY
	for _, line := range i.Lines(r, status) {
		text.Draw(screen, line, i.fontFace, x, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}
