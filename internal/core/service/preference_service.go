package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

type preferenceService struct {
	store ports.PreferenceStore
	log   zerolog.Logger
}

// NewPreferenceService returns a PreferenceService over store.
func NewPreferenceService(store ports.PreferenceStore, log zerolog.Logger) ports.PreferenceService {
	return &preferenceService{store: store, log: log}
}

// Theme returns the client's theme, light when nothing was saved.
func (s *preferenceService) Theme(ctx context.Context, clientID string) (domain.Theme, error) {
	raw, ok, err := s.store.GetTheme(ctx, clientID)
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	if !ok {
		return domain.DefaultTheme, nil
	}
	return domain.ThemeFromStored(raw), nil
}

func (s *preferenceService) SetTheme(ctx context.Context, clientID string, theme domain.Theme) error {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := s.store.SetTheme(ctx, clientID, theme); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	s.log.Debug().Str("client_id", clientID).Str("theme", string(theme)).Msg("theme saved")
	return nil
}

// ToggleTheme flips the current theme and persists the result.
func (s *preferenceService) ToggleTheme(ctx context.Context, clientID string) (domain.Theme, error) {
	current, err := s.Theme(ctx, clientID)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.SetTheme(ctx, clientID, next); err != nil {
		return "", err
	}
	return next, nil
}
