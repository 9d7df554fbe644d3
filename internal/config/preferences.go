// internal/config/preferences.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Preferences are the player settings persisted between sessions.
type Preferences struct {
	Volume int `json:"volume" mapstructure:"volume"`
}

// PreferenceStore reads and writes the settings file. OnChange and OnError
// callbacks run on the watcher goroutine.
type PreferenceStore struct {
	path string
	v    *viper.Viper

	mu       sync.RWMutex
	prefs    Preferences
	onChange []func(Preferences)
	onError  []func(error)
}

// OpenPreferences loads path, falling back to defaults when it does not exist yet.
func OpenPreferences(path string) (*PreferenceStore, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("volume", DefaultVolume)

	s := &PreferenceStore{path: path, v: v, prefs: Preferences{Volume: DefaultVolume}}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read preferences %s: %w", path, err)
		}
		return s, nil
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current preferences.
func (s *PreferenceStore) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetVolume clamps volume to [0, 100] and writes the file.
func (s *PreferenceStore) SetVolume(volume int) error {
	volume = max(0, min(100, volume))
	s.mu.Lock()
	s.prefs.Volume = volume
	s.v.Set("volume", volume)
	s.mu.Unlock()

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write preferences %s: %w", s.path, err)
	}
	return nil
}

// OnChange registers fn for edits made to the file outside the game.
func (s *PreferenceStore) OnChange(fn func(Preferences)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// OnError registers fn for edits that could not be applied. The previous
// preferences stay in effect.
func (s *PreferenceStore) OnError(fn func(error)) {
	s.mu.Lock()
	s.onError = append(s.onError, fn)
	s.mu.Unlock()
}

// Watch starts watching the settings file.
func (s *PreferenceStore) Watch() {
	s.v.OnConfigChange(s.handleChange)
	s.v.WatchConfig()
}

func (s *PreferenceStore) handleChange(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	err := s.v.ReadInConfig()
	if err != nil {
		err = fmt.Errorf("read preferences %s: %w", s.path, err)
	} else {
		err = s.reload()
	}

	s.mu.RLock()
	onChange := append([]func(Preferences){}, s.onChange...)
	onError := append([]func(error){}, s.onError...)
	s.mu.RUnlock()

	if err != nil {
		for _, fn := range onError {
			fn(err)
		}
		return
	}
	prefs := s.Get()
	for _, fn := range onChange {
		fn(prefs)
	}
}

func (s *PreferenceStore) reload() error {
	var p Preferences
	if err := s.v.Unmarshal(&p); err != nil {
		return fmt.Errorf("decode preferences: %w", err)
	}
	p.Volume = max(0, min(100, p.Volume))
	s.mu.Lock()
	s.prefs = p
	s.mu.Unlock()
	return nil
}
