// internal/audio/cues.go
package audio

import (
	"time"

	"github.com/gopxl/beep"

	"sand-line/internal/event"
)

// Tone is one note of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Attack   time.Duration
	Release  time.Duration
	Gain     float64
}

// Cue is a sequence of tones played for an event.
type Cue []Tone

// Cues maps event types to sounds. Events without an entry are silent.
var Cues = map[event.EventType]Cue{
	event.CardPlaced: {
		{Freq: 523.25, Duration: 60 * time.Millisecond, Wave: WaveSquare, Attack: 5 * time.Millisecond, Release: 30 * time.Millisecond, Gain: 0.25},
		{Freq: 659.25, Duration: 80 * time.Millisecond, Wave: WaveSquare, Attack: 5 * time.Millisecond, Release: 50 * time.Millisecond, Gain: 0.25},
	},
	event.CardMoved: {
		{Freq: 440, Duration: 50 * time.Millisecond, Wave: WaveSine, Attack: 5 * time.Millisecond, Release: 30 * time.Millisecond, Gain: 0.3},
	},
	event.CardReturned: {
		{Freq: 180, Duration: 90 * time.Millisecond, Wave: WaveSaw, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond, Gain: 0.2},
	},
	event.UpgradePlaced: {
		{Freq: 392, Duration: 70 * time.Millisecond, Wave: WaveSine, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Gain: 0.35},
		{Freq: 587.33, Duration: 70 * time.Millisecond, Wave: WaveSine, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Gain: 0.35},
		{Freq: 783.99, Duration: 120 * time.Millisecond, Wave: WaveSine, Attack: 5 * time.Millisecond, Release: 90 * time.Millisecond, Gain: 0.35},
	},
	event.UpgradeRejected: {
		{Freq: 100, Duration: 150 * time.Millisecond, Wave: WaveSaw, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond, Gain: 0.3},
	},
	event.CombatResolved: {
		{Freq: 0, Duration: 60 * time.Millisecond, Wave: WaveNoise, Attack: 2 * time.Millisecond, Release: 50 * time.Millisecond, Gain: 0.2},
	},
	event.EnemyDestroyed: {
		{Freq: 880, Duration: 120 * time.Millisecond, Wave: WaveSine, Attack: 2 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.3},
	},
	event.UnitDestroyed: {
		{Freq: 220, Duration: 100 * time.Millisecond, Wave: WaveSquare, Attack: 2 * time.Millisecond, Release: 60 * time.Millisecond, Gain: 0.2},
		{Freq: 146.83, Duration: 160 * time.Millisecond, Wave: WaveSquare, Attack: 2 * time.Millisecond, Release: 120 * time.Millisecond, Gain: 0.2},
	},
	event.EnemySpawned: {
		{Freq: 110, Duration: 80 * time.Millisecond, Wave: WaveSine, Attack: 10 * time.Millisecond, Release: 60 * time.Millisecond, Gain: 0.15},
	},
	event.PauseToggled: {
		{Freq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare, Attack: 2 * time.Millisecond, Release: 25 * time.Millisecond, Gain: 0.2},
	},
	event.SpeedChanged: {
		{Freq: 740, Duration: 35 * time.Millisecond, Wave: WaveSquare, Attack: 2 * time.Millisecond, Release: 20 * time.Millisecond, Gain: 0.2},
	},
	event.MenuToggled: {
		{Freq: 600, Duration: 35 * time.Millisecond, Wave: WaveSine, Attack: 2 * time.Millisecond, Release: 20 * time.Millisecond, Gain: 0.2},
	},
	event.Restarted: {
		{Freq: 261.63, Duration: 90 * time.Millisecond, Wave: WaveSine, Attack: 5 * time.Millisecond, Release: 50 * time.Millisecond, Gain: 0.3},
		{Freq: 392, Duration: 140 * time.Millisecond, Wave: WaveSine, Attack: 5 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.3},
	},
	event.Capitulated: {
		{Freq: 293.66, Duration: 250 * time.Millisecond, Wave: WaveSaw, Attack: 10 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.3},
		{Freq: 220, Duration: 250 * time.Millisecond, Wave: WaveSaw, Attack: 10 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.3},
		{Freq: 146.83, Duration: 500 * time.Millisecond, Wave: WaveSaw, Attack: 10 * time.Millisecond, Release: 400 * time.Millisecond, Gain: 0.3},
	},
}

// Streamer renders the cue at the given master gain.
func (c Cue) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c))
	for _, t := range c {
		osc := NewOscillator(t.Freq, t.Duration, t.Wave, rate)
		shaped := NewEnvelope(osc, t.Duration, t.Attack, t.Release, rate)
		parts = append(parts, newVolume(shaped, t.Gain))
	}
	return newVolume(beep.Seq(parts...), master)
}

// Duration is the total length of the cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, t := range c {
		d += t.Duration
	}
	return d
}
