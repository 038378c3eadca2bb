package ports

import (
	"context"

	"github.com/homestay/booking-gate/internal/core/domain"
)

// PreferenceStore persists the raw theme value per client.
type PreferenceStore interface {
	// GetTheme returns the stored value and whether one was found.
	GetTheme(ctx context.Context, clientID string) (string, bool, error)
	SetTheme(ctx context.Context, clientID string, theme domain.Theme) error
}

// PreferenceService exposes theme use cases to the transport layer.
type PreferenceService interface {
	Theme(ctx context.Context, clientID string) (domain.Theme, error)
	SetTheme(ctx context.Context, clientID string, theme domain.Theme) error
	ToggleTheme(ctx context.Context, clientID string) (domain.Theme, error)
}
