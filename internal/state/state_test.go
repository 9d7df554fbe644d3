package state

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/image/font/basicfont"

	"sand-line/internal/audio"
	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/event"
	"sand-line/internal/metrics"
)

type recordingState struct {
	log  *[]string
	name string
}

func (s recordingState) Enter()             { *s.log = append(*s.log, s.name+".enter") }
func (s recordingState) Update(float64)     {}
func (s recordingState) Draw(*ebiten.Image) {}
func (s recordingState) Exit()              { *s.log = append(*s.log, s.name+".exit") }

func newServices(t *testing.T) *Services {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	return &Services{Config: cfg, FontFace: basicfont.Face7x13}
}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.SetState(recordingState{&log, "a"})
	sm.SetState(recordingState{&log, "b"})
	sm.SetState(nil)
	want := []string{"a.enter", "a.exit", "b.enter", "b.exit"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %s, want %s", i, log[i], want[i])
		}
	}
	if sm.QuitRequested() {
		t.Error("quit should start false")
	}
	sm.RequestQuit()
	if !sm.QuitRequested() {
		t.Error("quit not recorded")
	}
}

func TestMenuButtons(t *testing.T) {
	sm := NewStateMachine()
	svc := newServices(t)
	menu := NewMenuState(sm, svc)
	sm.SetState(menu)

	c := menu.settingsButton.Rect.Min.Add(menu.settingsButton.Rect.Size().Div(2))
	menu.handleClick(c.X, c.Y)
	if _, ok := sm.Current().(*SettingsState); !ok {
		t.Fatalf("settings button opened %T", sm.Current())
	}
	sm.Current().(*SettingsState).back()
	if sm.Current() != menu {
		t.Fatal("back should return to the menu")
	}

	c = menu.playButton.Rect.Min.Add(menu.playButton.Rect.Size().Div(2))
	menu.handleClick(c.X, c.Y)
	if _, ok := sm.Current().(*GameState); !ok {
		t.Fatalf("play button opened %T", sm.Current())
	}

	c = menu.exitButton.Rect.Min.Add(menu.exitButton.Rect.Size().Div(2))
	menu.handleClick(c.X, c.Y)
	if !sm.QuitRequested() {
		t.Error("exit should request quit")
	}
}

func TestGameKeys(t *testing.T) {
	sm := NewStateMachine()
	gs := NewGameState(sm, newServices(t))
	sm.SetState(gs)
	game := gs.Game()

	gs.handleKey(ebiten.KeyS)
	if !game.MenuOpen() {
		t.Error("S should open the menu")
	}
	gs.handleKey(ebiten.KeySpace)
	if !game.Paused() {
		t.Error("Space should pause")
	}
	gs.handleKey(ebiten.KeyP)
	if game.Paused() {
		t.Error("P should resume")
	}
	gs.handleKey(ebiten.KeyPeriod)
	if game.Speed() != config.SpeedFast {
		t.Errorf("speed = %v", game.Speed())
	}
	gs.handleKey(ebiten.KeyPeriod)
	if game.Speed() != config.SpeedNormal {
		t.Errorf("second press should return to normal, speed = %v", game.Speed())
	}

	game.ClickAt(150, 150)
	gs.handleKey(ebiten.KeyR)
	if len(game.ECS.Units) != 1 {
		t.Error("R must not restart a running game")
	}
	game.ECS.AddUnit(component.SideEnemy, 0, 300, 100)
	gs.step(1)
	if !game.Capitulated() {
		t.Fatal("expected capitulation")
	}
	gs.handleKey(ebiten.KeyR)
	if game.Capitulated() || len(game.ECS.Units) != 0 {
		t.Error("R should restart after capitulation")
	}
}

func TestGamePressRouting(t *testing.T) {
	sm := NewStateMachine()
	gs := NewGameState(sm, newServices(t))
	sm.SetState(gs)
	game := gs.Game()

	gs.handlePress(50, 250)
	if len(game.ECS.SideIDs(component.SidePlayer)) != 1 {
		t.Fatal("board click should place a unit")
	}

	gs.handlePress(int(gs.pauseButton.X), int(gs.pauseButton.Y))
	if !game.Paused() {
		t.Error("pause button should pause")
	}
	gs.handlePress(int(gs.slowButton.X), int(gs.slowButton.Y))
	if game.Speed() != config.SpeedSlow {
		t.Errorf("slow button: speed = %v", game.Speed())
	}

	mb := gs.menuButton.Rect.Min.Add(image.Pt(1, 1))
	gs.handlePress(mb.X, mb.Y)
	if !game.MenuOpen() {
		t.Fatal("menu button should open the menu")
	}
	for i := 0; i < 20; i++ {
		gs.step(0.01)
	}
	gs.handlePress(config.MenuSlotX+10, config.DefenseSlotY+10)
	d, ok := game.Dragging()
	if !ok || game.ECS.Installations[d.Entity] == nil {
		t.Fatal("slot press should pick up an installation")
	}
	if game.MenuOpen() {
		t.Error("picking up an installation closes the menu")
	}
	game.EndDrag()

	game.ToggleMenu()
	units := len(game.ECS.SideIDs(component.SidePlayer))
	gs.handlePress(350, 450)
	if game.MenuOpen() {
		t.Error("a click outside the menu closes it")
	}
	if len(game.ECS.SideIDs(component.SidePlayer)) != units {
		t.Error("the closing click must not reach the board")
	}
}

func TestCapitulationPopupRestarts(t *testing.T) {
	sm := NewStateMachine()
	gs := NewGameState(sm, newServices(t))
	sm.SetState(gs)
	game := gs.Game()
	game.ECS.AddUnit(component.SideEnemy, 0, 0, 100)
	gs.step(1)

	gs.handlePress(50, 250)
	if len(game.ECS.SideIDs(component.SidePlayer)) != 0 {
		t.Error("board is locked after capitulation")
	}
	c := gs.popup.Button.Rect.Min.Add(image.Pt(2, 2))
	gs.handlePress(c.X, c.Y)
	if game.Capitulated() {
		t.Error("restart button should restart")
	}
}

func TestSettingsPausesAndResumes(t *testing.T) {
	sm := NewStateMachine()
	gs := NewGameState(sm, newServices(t))
	sm.SetState(gs)

	gs.openSettings()
	settings, ok := sm.Current().(*SettingsState)
	if !ok {
		t.Fatalf("current = %T", sm.Current())
	}
	if !gs.Game().Paused() {
		t.Error("opening settings should pause")
	}
	settings.back()
	if gs.Game().Paused() {
		t.Error("closing settings should resume")
	}

	gs.Game().TogglePause()
	gs.openSettings()
	sm.Current().(*SettingsState).back()
	if !gs.Game().Paused() {
		t.Error("a game paused by the player stays paused")
	}
}

func TestSettingsPersistVolume(t *testing.T) {
	prefs, err := config.OpenPreferences(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	svc := newServices(t)
	svc.Preferences = prefs
	svc.Audio = audio.NewPlayer(svc.Volume())

	s := NewSettingsState(NewStateMachine(), svc, nil)
	if s.slider.Value != config.DefaultVolume {
		t.Errorf("slider starts at %d", s.slider.Value)
	}
	s.setVolume(35)
	if prefs.Get().Volume != 35 || svc.Audio.Volume() != 35 {
		t.Errorf("volume not applied: prefs %d audio %d", prefs.Get().Volume, svc.Audio.Volume())
	}
}

func TestEventsReachListeners(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewGameCollector(reg)
	if err != nil {
		t.Fatal(err)
	}
	svc := newServices(t)
	svc.Metrics = collector

	gs := NewGameState(NewStateMachine(), svc)
	gs.handlePress(50, 50)
	gs.step(1)

	if got := testutil.ToFloat64(collector.Events.WithLabelValues(string(event.CardPlaced))); got != 1 {
		t.Errorf("CardPlaced count = %v", got)
	}
	if got := testutil.ToFloat64(collector.Events.WithLabelValues(string(event.EnemySpawned))); got != 1 {
		t.Errorf("EnemySpawned count = %v", got)
	}
	if got := testutil.ToFloat64(collector.LiveUnits.WithLabelValues("player")); got != 1 {
		t.Errorf("live players = %v", got)
	}
}
