package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"sand-line/internal/event"
)

func streamAll(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n < len(buf) {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	return out
}

func TestOscillatorShapes(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 20*time.Millisecond, wave, rate)
		samples := streamAll(t, osc)
		if len(samples) != rate.N(20*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", wave, len(samples), rate.N(20*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d out of range: %v", wave, i, s)
			}
			if wave == WaveSquare && math.Abs(s[0]) != 1 {
				t.Fatalf("square sample %d = %v", i, s[0])
			}
		}
	}
}

func TestEnvelopeFadesInAndOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 200*time.Millisecond, rate)
	samples := streamAll(t, env)
	if len(samples) != 1000 {
		t.Fatalf("got %d samples", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start from silence, got %v", samples[0][0])
	}
	if samples[50][0] != 0.5 {
		t.Errorf("halfway through attack = %v", samples[50][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain = %v", samples[500][0])
	}
	if samples[900][0] != 0.5 {
		t.Errorf("halfway through release = %v", samples[900][0])
	}
}

func TestCuesStayInRange(t *testing.T) {
	for typ, cue := range Cues {
		if cue.Duration() <= 0 {
			t.Errorf("%s: empty cue", typ)
		}
		samples := streamAll(t, cue.Streamer(sampleRate, 1))
		want := 0
		for _, tone := range cue {
			want += sampleRate.N(tone.Duration)
		}
		if len(samples) != want {
			t.Errorf("%s: %d samples, want %d", typ, len(samples), want)
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 {
				t.Fatalf("%s: sample %d out of range: %v", typ, i, s[0])
			}
		}
	}
}

func TestMutedCueIsSilent(t *testing.T) {
	for _, s := range streamAll(t, Cues[event.Capitulated].Streamer(sampleRate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("muted cue produced sound")
		}
	}
}

func TestPlayerVolumeAndEvents(t *testing.T) {
	p := NewPlayer(150)
	if p.Volume() != 100 {
		t.Errorf("volume should clamp to 100, got %d", p.Volume())
	}
	p.SetVolume(-3)
	if p.Volume() != 0 {
		t.Errorf("volume should clamp to 0, got %d", p.Volume())
	}

	if _, ok := p.Streamer(event.EnemyAdvanced); ok {
		t.Error("advance has no cue")
	}
	if _, ok := p.Streamer(event.CardPlaced); !ok {
		t.Error("placement should have a cue")
	}

	p.SetVolume(80)
	p.OnEvent(event.Event{Type: event.CardPlaced})
	if p.Played() != 0 {
		t.Error("an uninitialised player must drop events")
	}
	p.Close()
}
