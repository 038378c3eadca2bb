package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

type auditService struct {
	repo ports.SessionEventRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService. With a nil repository events are
// only logged.
func NewAuditService(repo ports.SessionEventRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single session event.
func (s *auditService) Process(ctx context.Context, event domain.SessionEvent) error {
	if s.repo != nil {
		if err := s.repo.InsertSessionEvent(ctx, event); err != nil {
			return fmt.Errorf("audit %s: %w", event.Kind, err)
		}
	}

	s.log.Info().
		Str("kind", string(event.Kind)).
		Str("email", event.Email).
		Str("user_id", event.UserID).
		Time("at", event.At).
		Msg("session event")
	return nil
}
