// internal/state/settings_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"sand-line/internal/config"
	"sand-line/internal/logs"
	"sand-line/internal/ui"
)

var _ State = (*SettingsState)(nil)

// SettingsState edits the volume on top of the screen it was opened from.
type SettingsState struct {
	sm            *StateMachine
	svc           *Services
	previousState State
	slider        *ui.Slider
	backButton    *ui.Button
}

func NewSettingsState(sm *StateMachine, svc *Services, previous State) *SettingsState {
	x := float32(config.ScreenWidth-config.SliderWidth) / 2
	y := float32(config.ScreenHeight) / 2
	bx := (config.ScreenWidth - config.MenuButtonWidth*2) / 2
	by := config.ScreenHeight/2 + config.PopupHeight/3
	return &SettingsState{
		sm:            sm,
		svc:           svc,
		previousState: previous,
		slider:        ui.NewSlider(x, y, config.SliderWidth, config.SliderHeight, "Volume", svc.Volume()),
		backButton:    ui.NewButton(image.Rect(bx, by, bx+config.MenuButtonWidth*2, by+config.MenuButtonHeight), "Back", svc.FontFace),
	}
}

func (s *SettingsState) Enter() {}

func (s *SettingsState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.back()
		return
	}
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.backButton.Contains(x, y) {
		s.back()
		return
	}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if s.slider.Update(x, y, pressed, justPressed) {
		s.setVolume(s.slider.Value)
	}
}

// setVolume applies a volume right away and persists it.
func (s *SettingsState) setVolume(v int) {
	if s.svc.Audio != nil {
		s.svc.Audio.SetVolume(v)
	}
	if s.svc.Preferences == nil {
		return
	}
	if err := s.svc.Preferences.SetVolume(v); err != nil {
		logs.Warn("saving volume failed", zap.Int("volume", v), zap.Error(err))
	}
}

func (s *SettingsState) back() {
	s.sm.SetState(s.previousState)
}

func (s *SettingsState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	drawTitle(screen, s.svc, "Settings", config.ScreenHeight/2-config.PopupHeight/2)
	s.slider.Draw(screen, s.svc.FontFace)
	cx, cy := ebiten.CursorPosition()
	s.backButton.Draw(screen, cx, cy)
}

func (s *SettingsState) Exit() {}

// drawTitle centers a line of text horizontally at baseline y.
func drawTitle(screen *ebiten.Image, svc *Services, title string, y int) {
	bounds := text.BoundString(svc.FontFace, title)
	text.Draw(screen, title, svc.FontFace, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
}
