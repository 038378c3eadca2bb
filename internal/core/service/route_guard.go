package service

import (
	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// RouteGuard is a stateless decision function over a policy and a session
// snapshot.
type RouteGuard struct{}

var _ ports.RouteGuard = RouteGuard{}

func NewRouteGuard() RouteGuard {
	return RouteGuard{}
}

// Evaluate checks authentication strictly before role, so an anonymous
// visitor asking for an admin route is sent to the login page, never home.
// session must be non-nil.
func (RouteGuard) Evaluate(policy domain.Policy, session ports.SessionReader) domain.Decision {
	if policy == domain.PolicyPublic {
		return domain.Allow()
	}
	if !session.IsAuthenticated() {
		return domain.Redirect(domain.LoginPath)
	}
	if policy == domain.PolicyAuthenticated {
		return domain.Allow()
	}

	// Anything stricter than authenticated requires admin. A logout racing
	// this call reads as anonymous.
	user, ok := session.CurrentUser()
	if !ok {
		return domain.Redirect(domain.LoginPath)
	}
	if !user.IsAdmin() {
		return domain.Redirect(domain.HomePath)
	}
	return domain.Allow()
}
