// internal/app/game.go
package app

import (
	"iter"
	"math"

	"go.uber.org/zap"

	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/defs"
	"sand-line/internal/entity"
	"sand-line/internal/event"
	"sand-line/internal/interfaces"
	"sand-line/internal/logs"
	"sand-line/internal/system"
	"sand-line/internal/utils"
	"sand-line/pkg/gridmap"
)

var _ interfaces.Game = (*Game)(nil)

// Game holds the simulation state and logic. It is driven by a single caller:
// Tick once per frame plus input commands in between.
type Game struct {
	Config        config.Config
	Grid          *gridmap.Grid
	ECS           *entity.ECS
	Installations defs.InstallationLibrary
	Rng           *utils.PRNGService

	EconomySystem      *system.EconomySystem
	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	MovementSystem     *system.MovementSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	events   *event.Queue
	gameTime float64 // wall seconds since start
	simTime  float64 // simulated seconds since the last restart
	drag     *component.Drag
	menuOpen bool
}

// NewGame builds a game from a validated configuration.
func NewGame(cfg config.Config) *Game {
	b := cfg.Board
	ecs := entity.NewECS()
	grid := gridmap.Build(b.Width, b.Height, b.CellSize, b.BuildableColumns)
	queue := event.NewQueue()
	advance := cfg.Timing.AdvanceInterval.Seconds()

	g := &Game{
		Config:        cfg,
		Grid:          grid,
		ECS:           ecs,
		Installations: defs.NewInstallationLibrary(b, cfg.Economy),
		Rng:           utils.NewPRNGService(cfg.Seed),
		events:        queue,
	}
	g.StateSystem = system.NewStateSystem(ecs, queue)
	g.EconomySystem = system.NewEconomySystem(ecs, queue, cfg.Economy, cfg.Timing.AccrualInterval.Seconds())
	g.SpawnSystem = system.NewSpawnSystem(ecs, grid, queue, g.Rng, cfg.Combat.UnitHealth, advance)
	g.CombatSystem = system.NewCombatSystem(ecs, grid, queue, cfg.Combat)
	g.MovementSystem = system.NewMovementSystem(ecs, grid, queue, g.CombatSystem, g.StateSystem, advance)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	logs.Info("game created",
		zap.Int("cols", grid.Cols()),
		zap.Int("rows", grid.Rows()),
		zap.Int64("seed", g.Rng.Seed()))
	return g
}

// Tick advances the game by elapsed wall seconds. Spawn runs before advance in
// the same tick; both fire at most once. Accrual catches up on every whole
// interval of a long gap. Nothing simulated happens while paused or capitulated.
func (g *Game) Tick(elapsed float64) {
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) || elapsed <= 0 {
		return
	}
	g.gameTime += elapsed
	g.ECS.GameTime = g.gameTime
	g.VisualEffectSystem.Update(elapsed)

	if !g.StateSystem.Running() {
		return
	}
	dt := elapsed * g.ECS.GameState.Speed // симулированное время
	g.simTime += dt

	// Сначала спавн, потом шаг врагов
	g.SpawnSystem.Update(dt)
	g.MovementSystem.Update(dt)
	if g.StateSystem.Capitulated() {
		g.cancelDrag()
		return
	}
	g.EconomySystem.Update(dt)

	// Перетаскиваемый юнит мог погибнуть в бою
	if g.drag != nil && !g.ECS.Exists(g.drag.Entity) {
		g.drag = nil
	}
}

// Events drains the events emitted since the previous call.
func (g *Game) Events() iter.Seq[event.Event] {
	return g.events.Drain()
}

// ToggleMenu opens or closes the buy menu and returns the new state.
func (g *Game) ToggleMenu() bool {
	g.menuOpen = !g.menuOpen
	g.events.Emit(event.MenuToggled, event.ToggleData{On: g.menuOpen})
	return g.menuOpen
}

// TogglePause flips pause and returns the new state.
func (g *Game) TogglePause() bool {
	return g.StateSystem.TogglePause()
}

// SetSpeedMultiplier changes how fast simulated time runs. Values that are not
// finite and positive are ignored.
func (g *Game) SetSpeedMultiplier(m float64) bool {
	return g.StateSystem.SetSpeed(m)
}

// Restart clears every entity and resets the pool, the timers and the loss
// state. Calling it twice is the same as calling it once.
func (g *Game) Restart() {
	g.ECS.Clear()
	g.Grid.Reset()
	g.EconomySystem.Reset()
	g.SpawnSystem.Reset()
	g.MovementSystem.Reset()
	g.StateSystem.Reset()
	g.drag = nil
	g.menuOpen = false
	g.simTime = 0
	g.events.Emit(event.Restarted, nil)
	logs.Info("restart")
}

func (g *Game) Capitulated() bool { return g.StateSystem.Capitulated() }
func (g *Game) Paused() bool      { return g.ECS.GameState.Paused }
func (g *Game) Speed() float64    { return g.ECS.GameState.Speed }
func (g *Game) MenuOpen() bool    { return g.menuOpen }
func (g *Game) GameTime() float64 { return g.gameTime }
func (g *Game) SimTime() float64  { return g.simTime }

// Status returns playing, paused or capitulated.
func (g *Game) Status() component.Status { return g.ECS.GameState.Status() }

// Resources returns a copy of the pool.
func (g *Game) Resources() component.Resources { return *g.ECS.Resources }

// Dragging returns the active drag, if any.
func (g *Game) Dragging() (component.Drag, bool) {
	if g.drag == nil {
		return component.Drag{}, false
	}
	return *g.drag, true
}

// Validate checks the board-wide invariants.
func (g *Game) Validate() error {
	return g.ECS.CheckInvariants(g.Grid.CellSize())
}
