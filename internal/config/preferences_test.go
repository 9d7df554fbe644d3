package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestPreferencesDefaultWhenMissing(t *testing.T) {
	store, err := OpenPreferences(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("OpenPreferences: %v", err)
	}
	if got := store.Get().Volume; got != DefaultVolume {
		t.Errorf("volume = %d, want %d", got, DefaultVolume)
	}
}

func TestPreferencesSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store, err := OpenPreferences(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetVolume(140); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}
	if got := store.Get().Volume; got != 100 {
		t.Errorf("volume should clamp to 100, got %d", got)
	}
	if err := store.SetVolume(35); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenPreferences(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.Get().Volume; got != 35 {
		t.Errorf("reopened volume = %d, want 35", got)
	}
}

func TestPreferencesReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"volume": 60}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := OpenPreferences(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := store.Get().Volume; got != 60 {
		t.Errorf("volume = %d, want 60", got)
	}
}

func TestPreferencesRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"volume":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenPreferences(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPreferencesReloadReportsBrokenEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"volume": 60}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := OpenPreferences(path)
	if err != nil {
		t.Fatal(err)
	}
	var changed []int
	var failures []error
	store.OnChange(func(p Preferences) { changed = append(changed, p.Volume) })
	store.OnError(func(err error) { failures = append(failures, err) })
	write := fsnotify.Event{Name: path, Op: fsnotify.Write}

	if err := os.WriteFile(path, []byte(`{"volume":`), 0o644); err != nil {
		t.Fatal(err)
	}
	store.handleChange(write)
	if len(failures) != 1 || len(changed) != 0 {
		t.Fatalf("broken edit: failures=%v changed=%v", failures, changed)
	}
	if got := store.Get().Volume; got != 60 {
		t.Errorf("broken edit must keep volume 60, got %d", got)
	}

	if err := os.WriteFile(path, []byte(`{"volume": 25}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store.handleChange(write)
	if len(changed) != 1 || changed[0] != 25 {
		t.Errorf("valid edit: changed=%v", changed)
	}
	if len(failures) != 1 {
		t.Errorf("valid edit must not report an error, failures=%v", failures)
	}

	store.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	if len(changed) != 1 || len(failures) != 1 {
		t.Error("chmod events are ignored")
	}
}
