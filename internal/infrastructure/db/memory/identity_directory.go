// Package memory holds the in-process adapters used when no external
// backend is configured.
package memory

import (
	"context"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// KnownIdentity is one entry of the fixed identity list. Password is nil
// when the identity accepts any password.
type KnownIdentity struct {
	Identity domain.Identity
	Password *string
}

// Credential returns the credential this entry is checked against.
func (k KnownIdentity) Credential() domain.Credential {
	if k.Password == nil {
		return domain.NoCredential()
	}
	return domain.PlainCredential(*k.Password)
}

func password(s string) *string { return &s }

// KnownIdentities returns the demo accounts.
func KnownIdentities() []KnownIdentity {
	return []KnownIdentity{
		{
			Identity: domain.Identity{
				ID:     "1",
				Name:   "John Doe",
				Email:  "user@example.com",
				Role:   domain.RoleUser,
				Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
			},
			Password: password("12345678"),
		},
		{
			Identity: domain.Identity{
				ID:     "2",
				Name:   "Admin User",
				Email:  "admin@example.com",
				Role:   domain.RoleAdmin,
				Avatar: "https://images.unsplash.com/photo-1522075469751-3a6694fb2f61?w=100&h=100&fit=crop",
			},
			Password: password("12345678"),
		},
		{
			Identity: domain.Identity{
				ID:     "3",
				Name:   "Vijay Negi",
				Email:  "negijay700@gmail.com",
				Role:   domain.RoleAdmin,
				Avatar: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop",
			},
			Password: password("12345678"),
		},
	}
}

// IdentityDirectory is a read-only lookup over a fixed identity list.
type IdentityDirectory struct {
	byEmail map[string]KnownIdentity
}

var _ ports.IdentityDirectory = (*IdentityDirectory)(nil)

// NewIdentityDirectory indexes entries by email. Later entries win on
// duplicate emails.
func NewIdentityDirectory(entries []KnownIdentity) *IdentityDirectory {
	d := &IdentityDirectory{byEmail: make(map[string]KnownIdentity, len(entries))}
	for _, e := range entries {
		d.byEmail[e.Identity.Email] = e
	}
	return d
}

func (d *IdentityDirectory) FindByEmail(_ context.Context, email string) (domain.Identity, domain.Credential, error) {
	e, ok := d.byEmail[email]
	if !ok {
		return domain.Identity{}, domain.Credential{}, domain.ErrIdentityNotFound
	}
	return e.Identity, e.Credential(), nil
}
