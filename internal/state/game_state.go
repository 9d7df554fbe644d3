// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sand-line/internal/app"
	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/event"
	"sand-line/internal/ui"
	"sand-line/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState runs a session: it turns input into game commands, ticks the
// simulation, forwards its events and draws the board and HUD.
type GameState struct {
	sm         *StateMachine
	svc        *Services
	game       *app.Game
	dispatcher *event.Dispatcher

	gridRenderer   *render.GridRenderer
	entityRenderer *render.EntityRenderer
	indicator      *ui.ResourceIndicator
	pauseButton    *ui.PauseButton
	slowButton     *ui.SpeedButton
	fastButton     *ui.SpeedButton
	menuButton     *ui.MenuButton
	sideMenu       *ui.SideMenu
	popup          *ui.Popup

	// pausedBySettings is set when opening settings paused the game, so that
	// returning resumes it.
	pausedBySettings bool
}

func NewGameState(sm *StateMachine, svc *Services) *GameState {
	game := app.NewGame(svc.Config)
	dispatcher := event.NewDispatcher()
	for _, l := range svc.listeners() {
		dispatcher.SubscribeAll(l)
	}

	boardColors := &render.BoardColors{
		BackgroundColor: config.BackgroundColor,
		FrontierColor:   config.FrontierColor,
		TrenchColor:     config.TrenchColor,
		DirtColor:       config.DirtColor,
		DefenseColor:    config.DefenseColor,
		GridLineColor:   config.GridLineColor,
		StrokeWidth:     config.StrokeWidth,
	}
	entityColors := &render.EntityColors{
		HealthBarColor:  config.HealthBarColor,
		HealthBackColor: config.HealthBackColor,
		TextLightColor:  config.TextLightColor,
		TextDarkColor:   config.TextDarkColor,
	}

	centerX := float32(config.ScreenWidth) / 2
	buttonY := float32(config.SpeedButtonY + config.SpeedButtonSize/2)
	return &GameState{
		sm:             sm,
		svc:            svc,
		game:           game,
		dispatcher:     dispatcher,
		gridRenderer:   render.NewGridRenderer(config.ScreenWidth, config.ScreenHeight, boardColors),
		entityRenderer: render.NewEntityRenderer(svc.FontFace, entityColors),
		indicator: ui.NewResourceIndicator(
			float32(config.ScreenWidth-config.MenuWidth+config.HUDPadding*6),
			config.HUDPadding,
			config.PauseButtonRadius/2,
			svc.FontFace,
		),
		pauseButton: ui.NewPauseButton(centerX, buttonY, config.PauseButtonRadius, config.PauseColor, config.PlayColor),
		slowButton:  ui.NewSpeedButton(centerX-config.SpeedButtonSize*2, buttonY, config.SpeedButtonSize, config.SpeedSlow, config.SpeedButtonColors),
		fastButton:  ui.NewSpeedButton(centerX+config.SpeedButtonSize*2, buttonY, config.SpeedButtonSize, config.SpeedFast, config.SpeedButtonColors),
		menuButton: ui.NewMenuButton(
			config.HUDPadding,
			config.ScreenHeight-config.MenuButtonHeight-config.HUDPadding,
			config.MenuButtonWidth,
			config.MenuButtonHeight,
			svc.FontFace,
		),
		sideMenu: ui.NewSideMenu(svc.FontFace, game.Installations),
		popup:    ui.NewCapitulationPopup(svc.FontFace),
	}
}

// Game exposes the running session.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	if g.pausedBySettings {
		g.pausedBySettings = false
		if g.game.Paused() {
			g.game.TogglePause()
		}
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.openSettings()
		return
	}
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		g.handleKey(key)
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handlePress(x, y)
	}
	if _, dragging := g.game.Dragging(); dragging {
		g.game.UpdateDrag(float64(x), float64(y))
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.game.EndDrag()
		}
	}

	g.step(deltaTime)
}

// step ticks the simulation and syncs the widgets with it.
func (g *GameState) step(deltaTime float64) {
	start := time.Now()
	g.game.Tick(deltaTime)
	if g.svc.Metrics != nil {
		g.svc.Metrics.ObserveTick(time.Since(start))
	}

	for e := range g.game.Events() {
		g.dispatcher.Dispatch(e)
	}

	g.sideMenu.SetOpen(g.game.MenuOpen())
	g.sideMenu.Update()
	g.pauseButton.SetPaused(g.game.Paused())

	if g.svc.Metrics != nil {
		ecs := g.game.ECS
		g.svc.Metrics.SetState(g.game.Resources(),
			len(ecs.SideIDs(component.SidePlayer)),
			len(ecs.SideIDs(component.SideEnemy)),
			g.game.Speed())
	}
}

func (g *GameState) openSettings() {
	if !g.game.Paused() && !g.game.Capitulated() {
		g.game.TogglePause()
		g.pausedBySettings = true
	}
	g.sm.SetState(NewSettingsState(g.sm, g.svc, g))
}

func (g *GameState) handleKey(key ebiten.Key) {
	switch key {
	case ebiten.KeyR:
		if g.game.Capitulated() {
			g.game.Restart()
		}
	case ebiten.KeyS:
		g.game.ToggleMenu()
	case ebiten.KeyP, ebiten.KeySpace:
		g.game.TogglePause()
	case ebiten.KeyComma:
		g.game.SetSpeedMultiplier(g.slowButton.Click(g.game.Speed()))
	case ebiten.KeyPeriod:
		g.game.SetSpeedMultiplier(g.fastButton.Click(g.game.Speed()))
	}
}

// handlePress routes a left click to the HUD first and to the board otherwise.
func (g *GameState) handlePress(x, y int) {
	if g.game.Capitulated() {
		if g.popup.Button.Contains(x, y) {
			g.game.Restart()
		}
		return
	}

	switch {
	case g.pauseButton.IsClicked(x, y):
		g.game.TogglePause()
		g.pauseButton.TogglePause()
	case g.slowButton.IsClicked(x, y):
		g.game.SetSpeedMultiplier(g.slowButton.Click(g.game.Speed()))
	case g.fastButton.IsClicked(x, y):
		g.game.SetSpeedMultiplier(g.fastButton.Click(g.game.Speed()))
	case g.menuButton.Contains(x, y):
		g.game.ToggleMenu()
	case g.sideMenu.Contains(x, y):
		if kind, ok := g.sideMenu.SlotAt(x, y); ok {
			g.game.BeginInstallationDrag(kind, float64(x), float64(y))
		}
	case g.game.MenuOpen():
		g.game.ToggleMenu()
	default:
		g.game.ClickAt(float64(x), float64(y))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	cx, cy := ebiten.CursorPosition()

	g.gridRenderer.Draw(screen, snap.Cells)
	g.entityRenderer.Draw(screen, snap)

	g.sideMenu.Draw(screen, snap.Resources)
	g.indicator.Draw(screen, snap.Resources, snap.Status)
	g.slowButton.Draw(screen, snap.Speed)
	g.pauseButton.Draw(screen)
	g.fastButton.Draw(screen, snap.Speed)
	g.menuButton.Draw(screen, snap.MenuOpen, cx, cy)

	if snap.Status == component.StatusCapitulated {
		g.popup.Draw(screen, cx, cy)
	}
}

func (g *GameState) Exit() {}
