package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"sand-line/internal/component"
	"sand-line/internal/event"
)

func newCollector(t *testing.T) (*GameCollector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewGameCollector(reg)
	if err != nil {
		t.Fatalf("NewGameCollector: %v", err)
	}
	return c, reg
}

func TestEventsAreCounted(t *testing.T) {
	c, _ := newCollector(t)
	c.OnEvent(event.Event{Type: event.EnemySpawned, Data: event.EntityData{ID: 1}})
	c.OnEvent(event.Event{Type: event.EnemySpawned, Data: event.EntityData{ID: 2}})
	c.OnEvent(event.Event{Type: event.Restarted})

	if got := testutil.ToFloat64(c.Events.WithLabelValues(string(event.EnemySpawned))); got != 2 {
		t.Errorf("spawned = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Events.WithLabelValues(string(event.Restarted))); got != 1 {
		t.Errorf("restarted = %v, want 1", got)
	}
}

func TestRejectionsAndCombat(t *testing.T) {
	c, _ := newCollector(t)
	c.OnEvent(event.Event{Type: event.UpgradeRejected, Data: event.InstallationData{
		Kind: component.InstallationDefense, Reason: event.RejectZone,
	}})
	c.OnEvent(event.Event{Type: event.UpgradePlaced, Data: event.InstallationData{Kind: component.InstallationSupply}})
	c.OnEvent(event.Event{Type: event.CombatResolved, Data: event.CombatData{PlayerDamage: 12, Defended: true}})

	if got := testutil.ToFloat64(c.Rejections.WithLabelValues("defense", "zone")); got != 1 {
		t.Errorf("zone rejections = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(c.Rejections); n != 1 {
		t.Errorf("placed installations must not count as rejections, series = %d", n)
	}
	if n := testutil.CollectAndCount(c.CombatDamage); n != 1 {
		t.Errorf("damage series = %d, want 1", n)
	}
}

func TestSetState(t *testing.T) {
	c, _ := newCollector(t)
	c.SetState(component.Resources{Supply: 2, Ammunition: 180, Production: 40}, 3, 5, 0.2)

	if got := testutil.ToFloat64(c.Resources.WithLabelValues("ammunition")); got != 180 {
		t.Errorf("ammunition = %v", got)
	}
	if got := testutil.ToFloat64(c.LiveUnits.WithLabelValues(component.SideEnemy.String())); got != 5 {
		t.Errorf("enemies = %v", got)
	}
	if got := testutil.ToFloat64(c.Speed); got != 0.2 {
		t.Errorf("speed = %v", got)
	}
	c.OnEvent(event.Event{Type: event.SpeedChanged, Data: event.SpeedData{From: 0.2, To: 5}})
	if got := testutil.ToFloat64(c.Speed); got != 5 {
		t.Errorf("speed after event = %v", got)
	}
}

func TestRegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewGameCollector(reg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewGameCollector(reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}
	first.OnEvent(event.Event{Type: event.Capitulated})
	if got := testutil.ToFloat64(second.Events.WithLabelValues(string(event.Capitulated))); got != 1 {
		t.Errorf("collectors should be shared, got %v", got)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	c, _ := newCollector(t)
	c.ObserveTick(2 * time.Millisecond)
	c.OnEvent(event.Event{Type: event.CardPlaced})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"sandline_events_total", "sandline_tick_duration_seconds"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output lacks %s", name)
		}
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *GameCollector
	c.OnEvent(event.Event{Type: event.CardPlaced})
	c.SetState(component.Resources{}, 0, 0, 1)
	c.ObserveTick(time.Millisecond)
}
