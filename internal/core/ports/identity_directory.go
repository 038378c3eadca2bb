package ports

import (
	"context"

	"github.com/homestay/booking-gate/internal/core/domain"
)

// IdentityDirectory is the set of identities allowed to log in.
type IdentityDirectory interface {
	// FindByEmail looks up an identity by exact email match. It returns
	// domain.ErrIdentityNotFound when no identity uses that email.
	FindByEmail(ctx context.Context, email string) (domain.Identity, domain.Credential, error)
}
