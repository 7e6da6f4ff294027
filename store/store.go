// ABOUTME: Key-value slot contracts for persisted editor state, scoped per browser profile.
// ABOUTME: Defines the slot keys, the Backend interface, and the profile-bound Slots view.
package store

import "time"

// Slot keys used by the editor.
const (
	KeyDoc      = "doc"
	KeyAutosave = "autosave"
	KeyDark     = "dark"
)

// Slots is the key-value store the editor controller persists through.
// A missing key reports ok=false rather than an error.
type Slots interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Entry is one stored slot with its revision metadata.
type Entry struct {
	Profile   string
	Key       string
	Value     string
	Rev       string
	UpdatedAt time.Time
}

// Backend stores slots for many profiles.
type Backend interface {
	Get(profile, key string) (string, bool, error)
	Set(profile, key, value string) error
	Remove(profile, key string) error
	Profiles() ([]string, error)
	Entries(profile string) ([]Entry, error)
	Close() error
}

// Scope binds a backend to a single profile.
func Scope(b Backend, profile string) Slots {
	return &scoped{backend: b, profile: profile}
}

type scoped struct {
	backend Backend
	profile string
}

func (s *scoped) Get(key string) (string, bool, error) {
	return s.backend.Get(s.profile, key)
}

func (s *scoped) Set(key, value string) error {
	return s.backend.Set(s.profile, key, value)
}

func (s *scoped) Remove(key string) error {
	return s.backend.Remove(s.profile, key)
}
