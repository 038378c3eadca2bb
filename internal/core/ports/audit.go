package ports

import (
	"context"

	"github.com/homestay/booking-gate/internal/core/domain"
)

// AuditRecorder receives session transitions. Record must not block.
type AuditRecorder interface {
	Record(event domain.SessionEvent)
}

// SessionEventRepository persists audit events.
type SessionEventRepository interface {
	InsertSessionEvent(ctx context.Context, event domain.SessionEvent) error
}

// AuditService handles one dequeued session event.
type AuditService interface {
	Process(ctx context.Context, event domain.SessionEvent) error
}
