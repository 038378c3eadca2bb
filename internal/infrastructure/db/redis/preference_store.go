package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// PreferenceStore keeps theme choices in Redis.
// Key format: theme:<client_id>. Keys do not expire.
type PreferenceStore struct {
	client *redis.Client
}

var _ ports.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore wraps the given Redis client.
func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

// GetTheme returns the raw stored value, if any.
func (s *PreferenceStore) GetTheme(ctx context.Context, clientID string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get theme: %w", err)
	}
	return v, true, nil
}

// SetTheme stores theme for clientID.
func (s *PreferenceStore) SetTheme(ctx context.Context, clientID string, theme domain.Theme) error {
	if err := s.client.Set(ctx, s.key(clientID), string(theme), 0).Err(); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}

func (s *PreferenceStore) key(clientID string) string {
	return "theme:" + clientID
}
