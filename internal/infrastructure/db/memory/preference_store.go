package memory

import (
	"context"
	"sync"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// PreferenceStore keeps theme choices for the lifetime of the process.
type PreferenceStore struct {
	mu     sync.RWMutex
	themes map[string]string
}

var _ ports.PreferenceStore = (*PreferenceStore)(nil)

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{themes: make(map[string]string)}
}

func (s *PreferenceStore) GetTheme(_ context.Context, clientID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.themes[clientID]
	return v, ok, nil
}

func (s *PreferenceStore) SetTheme(_ context.Context, clientID string, theme domain.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[clientID] = string(theme)
	return nil
}
