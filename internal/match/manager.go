package match

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrMatchNotFound is returned when a match ID is unknown or already removed.
var ErrMatchNotFound = errors.New("match not found")

// Manager is the registry of live matches, keyed by match ID.
type Manager struct {
	mu      sync.RWMutex
	matches map[string]*Match
}

func NewManager() *Manager {
	return &Manager{
		matches: make(map[string]*Match),
	}
}

// Create builds a new match from the given presets and registers it.
func (mgr *Manager) Create(ctx context.Context, blackPreset, whitePreset string) (*Match, error) {
	m, err := New(ctx, uuid.New().String(), blackPreset, whitePreset)
	if err != nil {
		return nil, err
	}

	mgr.mu.Lock()
	mgr.matches[m.ID] = m
	mgr.mu.Unlock()

	return m, nil
}

// Get returns the live match with the given ID.
func (mgr *Manager) Get(id string) (*Match, error) {
	mgr.mu.RLock()
	m, ok := mgr.matches[id]
	mgr.mu.RUnlock()

	if !ok {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// Remove drops a match from the registry. Used on abandonment and after
// terminal matches have been recorded.
func (mgr *Manager) Remove(id string) {
	mgr.mu.Lock()
	delete(mgr.matches, id)
	mgr.mu.Unlock()
}

// Count returns the number of live matches.
func (mgr *Manager) Count() int {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return len(mgr.matches)
}
