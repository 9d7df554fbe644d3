// internal/sim/run.go
package sim

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"sand-line/internal/app"
	"sand-line/internal/component"
	"sand-line/internal/event"
	"sand-line/internal/logs"
)

var ErrInvalidOptions = errors.New("invalid simulation options")

// Options control a headless run.
type Options struct {
	Seconds float64 // wall seconds fed to the game
	Step    float64 // seconds per tick
	Speed   float64 // speed multiplier, 1 when zero
	Check   bool    // validate invariants after every tick
}

func (o Options) validate() error {
	switch {
	case math.IsNaN(o.Seconds) || o.Seconds <= 0:
		return fmt.Errorf("%w: seconds must be positive", ErrInvalidOptions)
	case math.IsNaN(o.Step) || o.Step <= 0:
		return fmt.Errorf("%w: step must be positive", ErrInvalidOptions)
	case o.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative", ErrInvalidOptions)
	}
	return nil
}

// Report summarizes a headless run.
type Report struct {
	Ticks         int
	WallSeconds   float64
	Events        map[event.EventType]int
	Capitulations int
	Final         component.Resources
	Status        component.Status
	PlayerUnits   int
	Enemies       int
}

// Run drives g with an autoplayer for opts.Seconds. With Check set it stops at
// the first invariant violation and returns it together with the partial report.
func Run(g *app.Game, player *Autoplayer, opts Options) (Report, error) {
	if err := opts.validate(); err != nil {
		return Report{}, err
	}
	if opts.Speed > 0 {
		g.SetSpeedMultiplier(opts.Speed)
	}

	rep := Report{Events: make(map[event.EventType]int)}
	ticks := int(math.Ceil(opts.Seconds/opts.Step - 1e-9))
	for i := range ticks {
		dt := min(opts.Step, opts.Seconds-float64(i)*opts.Step)
		if dt <= 0 {
			break
		}
		player.Turn(g)
		g.Tick(dt)
		rep.WallSeconds += dt
		rep.Ticks++

		for e := range g.Events() {
			rep.Events[e.Type]++
			if e.Type == event.Capitulated {
				rep.Capitulations++
			}
		}
		if opts.Check {
			if err := g.Validate(); err != nil {
				rep.finish(g)
				return rep, fmt.Errorf("tick %d: %w", rep.Ticks, err)
			}
		}
	}
	rep.finish(g)
	logs.Info("simulation finished",
		zap.Int("ticks", rep.Ticks),
		zap.Int("capitulations", rep.Capitulations),
		zap.String("status", rep.Status.String()))
	return rep, nil
}

func (r *Report) finish(g *app.Game) {
	r.Final = g.Resources()
	r.Status = g.Status()
	r.PlayerUnits = len(g.ECS.SideIDs(component.SidePlayer))
	r.Enemies = len(g.ECS.SideIDs(component.SideEnemy))
}
