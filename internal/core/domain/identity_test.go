package domain

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredential_Matches(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cases := []struct {
		name     string
		cred     Credential
		password string
		want     bool
	}{
		{"none/empty", NoCredential(), "", true},
		{"none/any", NoCredential(), "whatever", true},
		{"plain/exact", PlainCredential("12345678"), "12345678", true},
		{"plain/wrong", PlainCredential("12345678"), "1234567", false},
		{"plain/empty", PlainCredential("12345678"), "", false},
		{"hashed/exact", HashedCredential(string(hash)), "12345678", true},
		{"hashed/wrong", HashedCredential(string(hash)), "87654321", false},
		{"hashed/garbage", HashedCredential("not-a-hash"), "12345678", false},
	}

	for _, tc := range cases {
		if got := tc.cred.Matches(tc.password); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestCredential_Present(t *testing.T) {
	if NoCredential().Present() {
		t.Error("zero credential must not be present")
	}
	if !PlainCredential("x").Present() || !HashedCredential("x").Present() {
		t.Error("plain and hashed credentials must be present")
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("owner").Valid() {
		t.Error("unknown role must be invalid")
	}
}
