package service

import (
	"context"
	"testing"

	"github.com/homestay/booking-gate/internal/core/domain"
)

type fixedSession struct {
	user *domain.Identity
}

func (s fixedSession) IsAuthenticated() bool { return s.user != nil }

func (s fixedSession) CurrentUser() (domain.Identity, bool) {
	if s.user == nil {
		return domain.Identity{}, false
	}
	return *s.user, true
}

var (
	anonymous    = fixedSession{}
	plainUser    = fixedSession{user: &domain.Identity{ID: "1", Email: "user@example.com", Role: domain.RoleUser}}
	adminSession = fixedSession{user: &domain.Identity{ID: "2", Email: "admin@example.com", Role: domain.RoleAdmin}}
)

func TestRouteGuard_Evaluate(t *testing.T) {
	guard := NewRouteGuard()

	cases := []struct {
		name    string
		policy  domain.Policy
		session fixedSession
		want    domain.Decision
	}{
		{"public/anonymous", domain.PolicyPublic, anonymous, domain.Allow()},
		{"public/user", domain.PolicyPublic, plainUser, domain.Allow()},
		{"public/admin", domain.PolicyPublic, adminSession, domain.Allow()},
		{"authenticated/anonymous", domain.PolicyAuthenticated, anonymous, domain.Redirect("/login")},
		{"authenticated/user", domain.PolicyAuthenticated, plainUser, domain.Allow()},
		{"authenticated/admin", domain.PolicyAuthenticated, adminSession, domain.Allow()},
		{"admin/anonymous", domain.PolicyAdmin, anonymous, domain.Redirect("/login")},
		{"admin/user", domain.PolicyAdmin, plainUser, domain.Redirect("/")},
		{"admin/admin", domain.PolicyAdmin, adminSession, domain.Allow()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := guard.Evaluate(tc.policy, tc.session)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRouteGuard_PublicNeverReadsSession(t *testing.T) {
	// A public route is decided before the session is consulted.
	var session *SessionStore
	if got := NewRouteGuard().Evaluate(domain.PolicyPublic, session); !got.Allowed() {
		t.Fatalf("expected allow, got %v", got)
	}
}

func TestRouteGuard_AnonymousStoreIsRedirected(t *testing.T) {
	got := NewRouteGuard().Evaluate(domain.PolicyAdmin, newStore(nil))
	if got != domain.Redirect(domain.LoginPath) {
		t.Fatalf("expected redirect to login, got %v", got)
	}
}

func TestRouteGuard_UnknownPolicyRequiresAdmin(t *testing.T) {
	guard := NewRouteGuard()
	bogus := domain.Policy(42)

	if got := guard.Evaluate(bogus, anonymous); got != domain.Redirect("/login") {
		t.Errorf("anonymous: expected /login, got %v", got)
	}
	if got := guard.Evaluate(bogus, plainUser); got != domain.Redirect("/") {
		t.Errorf("user: expected /, got %v", got)
	}
	if got := guard.Evaluate(bogus, adminSession); !got.Allowed() {
		t.Errorf("admin: expected allow, got %v", got)
	}
}

// ---------------------------------------------------------------------------
// End-to-end scenarios over a real SessionStore
// ---------------------------------------------------------------------------

func TestScenario_UserLogin(t *testing.T) {
	store := newStore(nil)
	guard := NewRouteGuard()

	user, err := store.Login(context.Background(), "user@example.com", "12345678")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", user.Role)
	}
	if got := guard.Evaluate(domain.PolicyAuthenticated, store); !got.Allowed() {
		t.Errorf("authenticated route: expected allow, got %v", got)
	}
	if got := guard.Evaluate(domain.PolicyAdmin, store); got != domain.Redirect("/") {
		t.Errorf("admin route: expected redirect to /, got %v", got)
	}
}

func TestScenario_AdminLogin(t *testing.T) {
	store := newStore(nil)

	user, err := store.Login(context.Background(), "admin@example.com", "12345678")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", user.Role)
	}
	if got := NewRouteGuard().Evaluate(domain.PolicyAdmin, store); !got.Allowed() {
		t.Errorf("expected allow, got %v", got)
	}
}

func TestScenario_AnonymousAdminRouteGoesToLogin(t *testing.T) {
	store := newStore(nil)

	got := NewRouteGuard().Evaluate(domain.PolicyAdmin, store)
	if got != domain.Redirect("/login") {
		t.Fatalf("expected redirect to /login, got %v", got)
	}
}

func TestScenario_LogoutRevokesAccess(t *testing.T) {
	store := newStore(nil)
	guard := NewRouteGuard()

	_, _ = store.Login(context.Background(), "admin@example.com", "12345678")
	store.Logout()

	if got := guard.Evaluate(domain.PolicyAuthenticated, store); got != domain.Redirect("/login") {
		t.Fatalf("expected redirect to /login after logout, got %v", got)
	}
}
