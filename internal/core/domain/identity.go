package domain

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Role is the authorization level carried by an Identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrIdentityNotFound = errors.New("identity not found")

// Identity is the profile of the currently authenticated user. It is never
// mutated after creation; a new login replaces it wholesale.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type credentialKind uint8

const (
	credentialNone credentialKind = iota
	credentialPlain
	credentialHashed
)

// Credential is the optional secret attached to a known identity.
// The zero value is "no credential", which accepts any password.
type Credential struct {
	kind   credentialKind
	secret string
}

// NoCredential returns a credential that matches any password.
func NoCredential() Credential { return Credential{} }

// PlainCredential returns a credential matched by exact string equality.
func PlainCredential(password string) Credential {
	return Credential{kind: credentialPlain, secret: password}
}

// HashedCredential returns a credential backed by a bcrypt hash.
func HashedCredential(hash string) Credential {
	return Credential{kind: credentialHashed, secret: hash}
}

// Present reports whether a password is required.
func (c Credential) Present() bool {
	return c.kind != credentialNone
}

// Matches reports whether password satisfies the credential.
func (c Credential) Matches(password string) bool {
	switch c.kind {
	case credentialNone:
		return true
	case credentialPlain:
		return subtle.ConstantTimeCompare([]byte(c.secret), []byte(password)) == 1
	case credentialHashed:
		return bcrypt.CompareHashAndPassword([]byte(c.secret), []byte(password)) == nil
	default:
		return false
	}
}
