// internal/metrics/metrics.go
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sand-line/internal/component"
	"sand-line/internal/event"
)

// GameCollector exports the session as Prometheus metrics. It listens to
// dispatched events and is fed the board state once per frame.
type GameCollector struct {
	gatherer prometheus.Gatherer

	Events       *prometheus.CounterVec
	Rejections   *prometheus.CounterVec
	CombatDamage *prometheus.HistogramVec
	TickDuration prometheus.Histogram

	Resources *prometheus.GaugeVec
	LiveUnits *prometheus.GaugeVec
	Speed     prometheus.Gauge
}

// NewGameCollector registers the game metrics against reg, defaulting to the
// global registry when nil.
func NewGameCollector(reg prometheus.Registerer) (*GameCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	events, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sandline_events_total",
		Help: "Simulation events, labeled by type.",
	}, []string{"type"}), "sandline_events_total")
	if err != nil {
		return nil, err
	}
	rejections, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sandline_installation_rejections_total",
		Help: "Rejected installation drops, labeled by kind and reason.",
	}, []string{"kind", "reason"}), "sandline_installation_rejections_total")
	if err != nil {
		return nil, err
	}
	damage, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sandline_player_damage",
		Help:    "Damage taken by player units per combat exchange.",
		Buckets: []float64{5, 10, 15, 20, 25, 50},
	}, []string{"defended"}), "sandline_player_damage")
	if err != nil {
		return nil, err
	}
	tick, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sandline_tick_duration_seconds",
		Help:    "Wall time spent in one simulation tick.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	}), "sandline_tick_duration_seconds")
	if err != nil {
		return nil, err
	}
	resources, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sandline_resources",
		Help: "Current resource pool, labeled by resource.",
	}, []string{"resource"}), "sandline_resources")
	if err != nil {
		return nil, err
	}
	units, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sandline_live_units",
		Help: "Units on the board, labeled by side.",
	}, []string{"side"}), "sandline_live_units")
	if err != nil {
		return nil, err
	}
	speed, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sandline_speed_multiplier",
		Help: "Current simulation speed multiplier.",
	}), "sandline_speed_multiplier")
	if err != nil {
		return nil, err
	}

	return &GameCollector{
		gatherer:     gatherer,
		Events:       events,
		Rejections:   rejections,
		CombatDamage: damage,
		TickDuration: tick,
		Resources:    resources,
		LiveUnits:    units,
		Speed:        speed,
	}, nil
}

// OnEvent counts the event and records its payload where one is interesting.
func (c *GameCollector) OnEvent(e event.Event) {
	if c == nil {
		return
	}
	c.Events.WithLabelValues(string(e.Type)).Inc()
	switch data := e.Data.(type) {
	case event.InstallationData:
		if e.Type == event.UpgradeRejected {
			c.Rejections.WithLabelValues(string(data.Kind), string(data.Reason)).Inc()
		}
	case event.CombatData:
		c.CombatDamage.WithLabelValues(strconv.FormatBool(data.Defended)).Observe(float64(data.PlayerDamage))
	case event.SpeedData:
		c.Speed.Set(data.To)
	}
}

// SetState records the resource pool, unit counts and speed.
func (c *GameCollector) SetState(r component.Resources, players, enemies int, speed float64) {
	if c == nil {
		return
	}
	c.Resources.WithLabelValues("supply").Set(float64(r.Supply))
	c.Resources.WithLabelValues("ammunition").Set(float64(r.Ammunition))
	c.Resources.WithLabelValues("production").Set(float64(r.Production))
	c.LiveUnits.WithLabelValues(component.SidePlayer.String()).Set(float64(players))
	c.LiveUnits.WithLabelValues(component.SideEnemy.String()).Set(float64(enemies))
	c.Speed.Set(speed)
}

// ObserveTick records how long one tick took.
func (c *GameCollector) ObserveTick(d time.Duration) {
	if c == nil {
		return
	}
	c.TickDuration.Observe(d.Seconds())
}

// Handler exposes a ready-to-use /metrics handler.
func (c *GameCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
