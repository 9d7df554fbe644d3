// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sand-line/internal/config"
	"sand-line/internal/ui"
)

const (
	menuButtonWidth   = 220
	menuButtonHeight  = 50
	menuButtonSpacing = 20
)

var _ State = (*MenuState)(nil)

// MenuState is the start screen.
type MenuState struct {
	sm             *StateMachine
	svc            *Services
	playButton     *ui.Button
	settingsButton *ui.Button
	exitButton     *ui.Button
}

func NewMenuState(sm *StateMachine, svc *Services) *MenuState {
	x := (config.ScreenWidth - menuButtonWidth) / 2
	y := config.ScreenHeight/2 - menuButtonHeight
	row := func(i int, label string) *ui.Button {
		top := y + i*(menuButtonHeight+menuButtonSpacing)
		return ui.NewButton(image.Rect(x, top, x+menuButtonWidth, top+menuButtonHeight), label, svc.FontFace)
	}
	return &MenuState{
		sm:             sm,
		svc:            svc,
		playButton:     row(0, "Play"),
		settingsButton: row(1, "Settings"),
		exitButton:     row(2, "Exit"),
	}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.svc))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handleClick(ebiten.CursorPosition())
	}
}

func (s *MenuState) handleClick(x, y int) {
	switch {
	case s.playButton.Contains(x, y):
		s.sm.SetState(NewGameState(s.sm, s.svc))
	case s.settingsButton.Contains(x, y):
		s.sm.SetState(NewSettingsState(s.sm, s.svc, s))
	case s.exitButton.Contains(x, y):
		s.sm.RequestQuit()
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := ebiten.CursorPosition()
	drawTitle(screen, s.svc, config.WindowTitle, config.ScreenHeight/2-menuButtonHeight*2)
	s.playButton.Draw(screen, cx, cy)
	s.settingsButton.Draw(screen, cx, cy)
	s.exitButton.Draw(screen, cx, cy)
}

func (s *MenuState) Exit() {}
