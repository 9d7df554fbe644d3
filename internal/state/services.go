// internal/state/services.go
package state

import (
	"golang.org/x/image/font"

	"sand-line/internal/audio"
	"sand-line/internal/config"
	"sand-line/internal/event"
	"sand-line/internal/metrics"
)

// Services are shared by every screen. Preferences, Audio and Metrics are
// optional.
type Services struct {
	Config      config.Config
	Preferences *config.PreferenceStore
	Audio       *audio.Player
	Metrics     *metrics.GameCollector
	FontFace    font.Face
}

// listeners returns the event listeners that are configured.
func (s *Services) listeners() []event.Listener {
	var out []event.Listener
	if s.Audio != nil {
		out = append(out, s.Audio)
	}
	if s.Metrics != nil {
		out = append(out, s.Metrics)
	}
	return out
}

// Volume is the persisted volume, or the default without a preference store.
func (s *Services) Volume() int {
	if s.Preferences == nil {
		return config.DefaultVolume
	}
	return s.Preferences.Get().Volume
}
