// ABOUTME: In-memory slot backend used by tests and by the server when no data dir is available.
// ABOUTME: Thread-safe map keyed by profile then slot key.
package store

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps slots in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]map[string]Entry
}

// NewMemoryStore creates an empty in-memory backend.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]map[string]Entry)}
}

// Get returns the value stored under key for profile.
func (m *MemoryStore) Get(profile, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.slots[profile][key]
	if !ok {
		return "", false, nil
	}
	return e.Value, true, nil
}

// Set stores value under key for profile with a fresh revision.
func (m *MemoryStore) Set(profile, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slots[profile] == nil {
		m.slots[profile] = make(map[string]Entry)
	}
	m.slots[profile][key] = Entry{
		Profile:   profile,
		Key:       key,
		Value:     value,
		Rev:       NewRev(),
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

// Remove deletes key for profile. Removing a missing key is not an error.
func (m *MemoryStore) Remove(profile, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots[profile], key)
	if len(m.slots[profile]) == 0 {
		delete(m.slots, profile)
	}
	return nil
}

// Profiles lists profiles holding at least one slot, sorted.
func (m *MemoryStore) Profiles() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles := make([]string, 0, len(m.slots))
	for p := range m.slots {
		profiles = append(profiles, p)
	}
	sort.Strings(profiles)
	return profiles, nil
}

// Entries lists the slots of a profile sorted by key.
func (m *MemoryStore) Entries(profile string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, 0, len(m.slots[profile]))
	for _, e := range m.slots[profile] {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Close is a no-op for the memory backend.
func (m *MemoryStore) Close() error {
	return nil
}
