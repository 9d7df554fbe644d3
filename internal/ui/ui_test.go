package ui

import (
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"

	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/defs"
)

func TestButtonContains(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 70, 40), "Play", basicfont.Face7x13)
	if !b.Contains(10, 10) || !b.Contains(69, 39) {
		t.Error("corners inside the rectangle should hit")
	}
	if b.Contains(70, 40) || b.Contains(5, 20) {
		t.Error("points outside should miss")
	}
}

func TestSpeedButtonToggle(t *testing.T) {
	fast := NewSpeedButton(100, 20, 14, config.SpeedFast, config.SpeedButtonColors)
	slow := NewSpeedButton(60, 20, 14, config.SpeedSlow, config.SpeedButtonColors)

	if got := fast.Next(config.SpeedNormal); got != config.SpeedFast {
		t.Errorf("fast from normal = %v", got)
	}
	if got := fast.Click(config.SpeedFast); got != config.SpeedNormal {
		t.Errorf("fast from fast = %v, want back to normal", got)
	}
	if got := slow.Next(config.SpeedFast); got != config.SpeedSlow {
		t.Errorf("slow from fast = %v", got)
	}
	if !fast.IsClicked(105, 25) || fast.IsClicked(60, 20) {
		t.Error("hit test is wrong")
	}
}

func TestPauseButton(t *testing.T) {
	b := NewPauseButton(500, 20, 12, config.PauseColor, config.PlayColor)
	b.TogglePause()
	if !b.IsPaused {
		t.Fatal("toggle should pause")
	}
	b.SetPaused(false)
	if b.IsPaused {
		t.Error("SetPaused(false) ignored")
	}
	if !b.IsClicked(505, 25) || b.IsClicked(540, 20) {
		t.Error("hit test is wrong")
	}
}

func TestSideMenuSlides(t *testing.T) {
	cfg := config.Default()
	m := NewSideMenu(basicfont.Face7x13, defs.NewInstallationLibrary(cfg.Board, cfg.Economy))
	if m.Visible() {
		t.Fatal("menu starts hidden")
	}
	if _, ok := m.SlotAt(config.MenuSlotX+10, config.SupplySlotY+10); ok {
		t.Error("hidden menu has no slots")
	}

	m.SetOpen(true)
	for i := 0; i < 20; i++ {
		m.Update()
	}
	kind, ok := m.SlotAt(config.MenuSlotX+10, config.SupplySlotY+10)
	if !ok || kind != component.InstallationSupply {
		t.Errorf("supply slot = %v, %v", kind, ok)
	}
	kind, ok = m.SlotAt(config.MenuSlotX+10, config.DefenseSlotY+10)
	if !ok || kind != component.InstallationDefense {
		t.Errorf("defense slot = %v, %v", kind, ok)
	}
	if !m.Contains(config.MenuWidth-1, 5) || m.Contains(config.MenuWidth+1, 5) {
		t.Error("panel bounds are wrong")
	}

	m.SetOpen(false)
	for i := 0; i < 20; i++ {
		m.Update()
	}
	if m.Visible() {
		t.Error("menu should be hidden after closing")
	}
}

func TestSlider(t *testing.T) {
	s := NewSlider(100, 200, 300, 12, "Volume", 150)
	if s.Value != 100 {
		t.Fatalf("initial value should clamp, got %d", s.Value)
	}
	if s.Update(250, 205, true, false) {
		t.Error("moving without grabbing must not change the value")
	}
	if !s.Update(250, 205, true, true) || s.Value != 50 {
		t.Errorf("grab at the middle: value %d", s.Value)
	}
	if !s.Update(20, 500, true, false) || s.Value != 0 {
		t.Errorf("drag past the left end: value %d", s.Value)
	}
	if s.Update(400, 205, false, false) || s.Value != 0 {
		t.Error("release should end the drag")
	}
	if got := s.ValueAt(10000); got != 100 {
		t.Errorf("ValueAt right of the bar = %d", got)
	}
}

func TestResourceIndicatorLines(t *testing.T) {
	i := NewResourceIndicator(10, 10, 8, basicfont.Face7x13)
	lines := i.Lines(component.Resources{Supply: 2, Ammunition: 30, Production: 5}, component.StatusPaused)
	want := []string{"Supply: 2", "Ammunition: 30", "Production: 5", component.StatusPaused.String()}
	for n := range want {
		if lines[n] != want[n] {
			t.Errorf("line %d = %q, want %q", n, lines[n], want[n])
		}
	}
}

func TestCapitulationPopupIsCentered(t *testing.T) {
	p := NewCapitulationPopup(basicfont.Face7x13)
	c := p.Rect.Min.Add(p.Rect.Size().Div(2))
	if c.X != config.ScreenWidth/2 || c.Y != config.ScreenHeight/2 {
		t.Errorf("popup center = %v", c)
	}
	if !p.Button.Rect.In(p.Rect) {
		t.Error("restart button should sit inside the popup")
	}
}
