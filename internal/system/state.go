// internal/system/state.go
package system

import (
	"math"

	"go.uber.org/zap"

	"sand-line/internal/component"
	"sand-line/internal/entity"
	"sand-line/internal/event"
	"sand-line/internal/logs"
	"sand-line/internal/types"
)

// StateSystem owns the game state singleton: capitulation, pause and speed.
type StateSystem struct {
	ecs   *entity.ECS
	queue *event.Queue
}

func NewStateSystem(ecs *entity.ECS, queue *event.Queue) *StateSystem {
	return &StateSystem{ecs: ecs, queue: queue}
}

// Running reports whether time-gated systems should run.
func (s *StateSystem) Running() bool {
	st := s.ecs.GameState
	return st.Phase == component.PhasePlaying && !st.Paused
}

func (s *StateSystem) Capitulated() bool {
	return s.ecs.GameState.Phase == component.PhaseCapitulated
}

// Capitulate enters the loss state. It reports false if already capitulated.
func (s *StateSystem) Capitulate(by types.EntityID) bool {
	if s.Capitulated() {
		return false
	}
	s.ecs.GameState.Phase = component.PhaseCapitulated
	s.queue.Emit(event.Capitulated, event.EntityData{ID: by, Side: component.SideEnemy})
	logs.Info("capitulated", zap.Uint64("enemy", uint64(by)))
	return true
}

// TogglePause flips the pause flag and returns the new value.
func (s *StateSystem) TogglePause() bool {
	st := s.ecs.GameState
	st.Paused = !st.Paused
	s.queue.Emit(event.PauseToggled, event.ToggleData{On: st.Paused})
	logs.Debug("pause toggled", zap.Bool("paused", st.Paused))
	return st.Paused
}

// SetSpeed changes the speed multiplier. Non-positive and non-finite values are
// ignored.
func (s *StateSystem) SetSpeed(m float64) bool {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return false
	}
	st := s.ecs.GameState
	from := st.Speed
	st.Speed = m
	s.queue.Emit(event.SpeedChanged, event.SpeedData{From: from, To: m})
	logs.Info("speed changed", zap.Float64("from", from), zap.Float64("to", m))
	return true
}

// Reset leaves capitulation. Pause and speed are player choices and persist.
func (s *StateSystem) Reset() {
	s.ecs.GameState.Phase = component.PhasePlaying
}
