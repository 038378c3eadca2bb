package ports

import (
	"context"

	"github.com/homestay/booking-gate/internal/core/domain"
)

// SessionReader is the read-only view of the session the route guard and
// rendering layer consume.
type SessionReader interface {
	IsAuthenticated() bool
	CurrentUser() (domain.Identity, bool)
}

// SessionStore owns the single active identity.
type SessionStore interface {
	SessionReader
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Logout()
}

// RouteGuard decides whether a navigation may proceed.
type RouteGuard interface {
	Evaluate(policy domain.Policy, session SessionReader) domain.Decision
}

// RouteResolver maps a request path to the route declaring its policy.
type RouteResolver interface {
	Resolve(path string) domain.Route
	Routes() []domain.Route
}
