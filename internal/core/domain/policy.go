package domain

import (
	"errors"
	"fmt"
)

// Policy is the access requirement a route declares.
type Policy uint8

const (
	PolicyPublic Policy = iota
	PolicyAuthenticated
	PolicyAdmin
)

var ErrUnknownPolicy = errors.New("unknown route policy")
var ErrInvalidRoute = errors.New("invalid route")

var policyNames = map[Policy]string{
	PolicyPublic:        "public",
	PolicyAuthenticated: "authenticated",
	PolicyAdmin:         "admin",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy converts a policy name back into a Policy.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// MarshalText lets policies appear by name in JSON.
func (p Policy) MarshalText() ([]byte, error) {
	if _, ok := policyNames[p]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(b []byte) error {
	parsed, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

const (
	LoginPath = "/login"
	HomePath  = "/"

	// CatchAllPattern matches any path; its route answers unknown pages.
	CatchAllPattern = "*"
)

// DecisionKind is the outcome of a route guard evaluation.
type DecisionKind string

const (
	DecisionAllow    DecisionKind = "allow"
	DecisionRedirect DecisionKind = "redirect"
)

// Decision tells the navigation layer to render the target or go elsewhere.
// Path is only set for redirects.
type Decision struct {
	Kind DecisionKind
	Path string
}

func Allow() Decision { return Decision{Kind: DecisionAllow} }

func Redirect(path string) Decision {
	return Decision{Kind: DecisionRedirect, Path: path}
}

func (d Decision) Allowed() bool { return d.Kind == DecisionAllow }

func (d Decision) String() string {
	if d.Allowed() {
		return string(DecisionAllow)
	}
	return fmt.Sprintf("%s(%s)", DecisionRedirect, d.Path)
}

// Route binds a navigable path pattern to its access policy.
type Route struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Policy  Policy `json:"policy"`
}
