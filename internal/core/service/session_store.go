package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// SessionStore is the single source of truth for who is logged in.
// Readers never block; Login and Logout are serialized so the identity swap
// is atomic from a reader's point of view.
type SessionStore struct {
	directory ports.IdentityDirectory
	audit     ports.AuditRecorder
	log       zerolog.Logger
	now       func() time.Time

	mu      sync.Mutex
	current atomic.Pointer[domain.Identity]
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore returns an anonymous session backed by directory.
// A nil audit recorder disables auditing.
func NewSessionStore(directory ports.IdentityDirectory, audit ports.AuditRecorder, log zerolog.Logger) *SessionStore {
	if audit == nil {
		audit = nopRecorder{}
	}
	return &SessionStore{
		directory: directory,
		audit:     audit,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Login makes the identity registered under email the active one when the
// password satisfies its credential. On failure the active identity, if any,
// is left untouched.
func (s *SessionStore) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	identity, credential, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return domain.Identity{}, s.rejectLogin(email)
		}
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}
	if !credential.Matches(password) {
		return domain.Identity{}, s.rejectLogin(email)
	}

	s.mu.Lock()
	s.current.Store(&identity)
	s.audit.Record(domain.SessionEvent{
		Kind:   domain.EventLoginSucceeded,
		Email:  identity.Email,
		UserID: identity.ID,
		Role:   identity.Role,
		At:     s.now(),
	})
	s.mu.Unlock()

	s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("login succeeded")
	return identity, nil
}

func (s *SessionStore) rejectLogin(email string) error {
	s.audit.Record(domain.SessionEvent{Kind: domain.EventLoginFailed, Email: email, At: s.now()})
	s.log.Warn().Str("email", email).Msg("login rejected")
	return domain.ErrInvalidCredentials
}

// Logout clears the active identity. Calling it while anonymous is a no-op.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Swap(nil)
	if prev == nil {
		return
	}
	s.audit.Record(domain.SessionEvent{
		Kind:   domain.EventLogout,
		Email:  prev.Email,
		UserID: prev.ID,
		Role:   prev.Role,
		At:     s.now(),
	})
	s.log.Info().Str("user_id", prev.ID).Msg("logged out")
}

// IsAuthenticated is derived from the identity pointer, never stored apart.
func (s *SessionStore) IsAuthenticated() bool {
	return s.current.Load() != nil
}

// CurrentUser returns a copy of the active identity.
func (s *SessionStore) CurrentUser() (domain.Identity, bool) {
	p := s.current.Load()
	if p == nil {
		return domain.Identity{}, false
	}
	return *p, true
}

type nopRecorder struct{}

func (nopRecorder) Record(domain.SessionEvent) {}
