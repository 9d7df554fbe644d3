// internal/component/game_state.go
package component

// Phase is the loss state of a session. Pause is tracked separately.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseCapitulated
)

// Status is what observers see: playing, paused or capitulated.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusCapitulated
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusCapitulated:
		return "capitulated"
	}
	return "playing"
}

// GameState is the singleton state component.
type GameState struct {
	Phase  Phase
	Paused bool
	Speed  float64
}

// Status folds phase and pause into the observable status. Capitulation wins.
func (g GameState) Status() Status {
	switch {
	case g.Phase == PhaseCapitulated:
		return StatusCapitulated
	case g.Paused:
		return StatusPaused
	}
	return StatusPlaying
}
