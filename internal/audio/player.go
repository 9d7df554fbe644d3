// internal/audio/player.go
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"sand-line/internal/event"
	"sand-line/internal/logs"
)

const sampleRate = beep.SampleRate(44100)

// Player plays a cue for every dispatched event that has one. Until Init
// succeeds it drops events, so a machine without an audio device still runs
// the game.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      atomic.Int64 // percent
	played      atomic.Int64
}

func NewPlayer(volume int) *Player {
	p := &Player{mixer: &beep.Mixer{}}
	p.SetVolume(volume)
	return p
}

// Init opens the speaker. Calling it again after success does nothing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	logs.Info("audio ready", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Close stops everything that is playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetVolume sets the master volume in percent, clamped to [0, 100].
func (p *Player) SetVolume(percent int) {
	p.volume.Store(int64(min(max(percent, 0), 100)))
}

func (p *Player) Volume() int {
	return int(p.volume.Load())
}

// Played counts cues handed to the speaker.
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Streamer builds the sound for an event at the current volume.
func (p *Player) Streamer(t event.EventType) (beep.Streamer, bool) {
	cue, ok := Cues[t]
	if !ok {
		return nil, false
	}
	return cue.Streamer(sampleRate, float64(p.Volume())/100), true
}

func (p *Player) OnEvent(e event.Event) {
	p.mu.Lock()
	ready := p.initialized
	p.mu.Unlock()
	if !ready || p.Volume() == 0 {
		return
	}
	s, ok := p.Streamer(e.Type)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
}
