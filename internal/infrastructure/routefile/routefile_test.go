package routefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/homestay/booking-gate/internal/core/domain"
)

const sample = `
[[route]]
name    = "home"
pattern = "/"
policy  = "public"

[[route]]
name    = "dashboard"
pattern = "/dashboard/*"
policy  = "authenticated"

[[route]]
name    = "admin"
pattern = "/admin/*"
policy  = "admin"
`

func TestParse(t *testing.T) {
	routes, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
	if routes[1].Name != "dashboard" || routes[1].Policy != domain.PolicyAuthenticated {
		t.Errorf("unexpected dashboard route: %+v", routes[1])
	}
	if routes[2].Policy != domain.PolicyAdmin {
		t.Errorf("expected admin policy, got %v", routes[2].Policy)
	}
}

func TestParse_UnknownPolicy(t *testing.T) {
	_, err := Parse([]byte("[[route]]\nname = \"x\"\npattern = \"/x\"\npolicy = \"root\"\n"))
	if !errors.Is(err, domain.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("[[route]]\nname = \"x\"\npattern = \"/x\"\npolicy = \"public\"\nroles = [\"a\"]\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("")); !errors.Is(err, domain.ErrInvalidRoute) {
		t.Fatalf("expected ErrInvalidRoute, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.toml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	routes, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
