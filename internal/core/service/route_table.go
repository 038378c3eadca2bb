package service

import (
	"fmt"
	"path"
	"strings"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// DefaultRoutes is the navigable surface of the marketplace front end.
func DefaultRoutes() []domain.Route {
	return []domain.Route{
		{Name: "home", Pattern: "/", Policy: domain.PolicyPublic},
		{Name: "homestays", Pattern: "/homestay", Policy: domain.PolicyPublic},
		{Name: "rooms", Pattern: "/rooms", Policy: domain.PolicyPublic},
		{Name: "homestay_details", Pattern: "/homestay/:id", Policy: domain.PolicyPublic},
		{Name: "login", Pattern: "/login", Policy: domain.PolicyPublic},
		{Name: "register", Pattern: "/register", Policy: domain.PolicyPublic},
		{Name: "about", Pattern: "/about", Policy: domain.PolicyPublic},
		{Name: "contact", Pattern: "/contact", Policy: domain.PolicyPublic},
		{Name: "faq", Pattern: "/faq", Policy: domain.PolicyPublic},
		{Name: "privacy_policy", Pattern: "/privacy-policy", Policy: domain.PolicyPublic},
		{Name: "terms_of_service", Pattern: "/terms-of-service", Policy: domain.PolicyPublic},
		{Name: "testimonials", Pattern: "/testimonials", Policy: domain.PolicyPublic},
		{Name: "blog", Pattern: "/blog", Policy: domain.PolicyPublic},
		{Name: "dashboard", Pattern: "/dashboard/*", Policy: domain.PolicyAuthenticated},
		{Name: "admin", Pattern: "/admin/*", Policy: domain.PolicyAdmin},
		notFoundRoute(),
	}
}

func notFoundRoute() domain.Route {
	return domain.Route{Name: "not_found", Pattern: domain.CatchAllPattern, Policy: domain.PolicyPublic}
}

type compiledRoute struct {
	route    domain.Route
	segments []string
	wildcard bool
}

// RouteTable resolves paths against an ordered, immutable list of routes.
// The first match wins; the catch-all is always last.
type RouteTable struct {
	routes   []compiledRoute
	fallback domain.Route
}

var _ ports.RouteResolver = (*RouteTable)(nil)

// NewRouteTable validates and compiles routes. A catch-all route is appended
// when none is declared.
func NewRouteTable(routes []domain.Route) (*RouteTable, error) {
	t := &RouteTable{fallback: notFoundRoute()}
	seen := make(map[string]struct{}, len(routes))

	for i, r := range routes {
		if _, err := r.Policy.MarshalText(); err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}
		if r.Name == "" {
			return nil, fmt.Errorf("%w: route %d has no name", domain.ErrInvalidRoute, i)
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate route name %q", domain.ErrInvalidRoute, r.Name)
		}
		seen[r.Name] = struct{}{}

		if r.Pattern == domain.CatchAllPattern {
			if i != len(routes)-1 {
				return nil, fmt.Errorf("%w: catch-all %q must be the last route", domain.ErrInvalidRoute, r.Name)
			}
			t.fallback = r
			continue
		}

		c, err := compilePattern(r)
		if err != nil {
			return nil, err
		}
		t.routes = append(t.routes, c)
	}
	return t, nil
}

func compilePattern(r domain.Route) (compiledRoute, error) {
	if !strings.HasPrefix(r.Pattern, "/") {
		return compiledRoute{}, fmt.Errorf("%w: pattern %q must start with /", domain.ErrInvalidRoute, r.Pattern)
	}

	c := compiledRoute{route: r, segments: splitPath(r.Pattern)}
	for i, seg := range c.segments {
		switch {
		case seg == "*":
			if i != len(c.segments)-1 {
				return compiledRoute{}, fmt.Errorf("%w: wildcard must end pattern %q", domain.ErrInvalidRoute, r.Pattern)
			}
			c.wildcard = true
		case seg == ":":
			return compiledRoute{}, fmt.Errorf("%w: unnamed parameter in %q", domain.ErrInvalidRoute, r.Pattern)
		}
	}
	if c.wildcard {
		c.segments = c.segments[:len(c.segments)-1]
	}
	return c, nil
}

// Resolve returns the route governing p. Query strings, fragments and
// trailing slashes are ignored.
func (t *RouteTable) Resolve(p string) domain.Route {
	segs := splitPath(normalizePath(p))
	for _, c := range t.routes {
		if c.matches(segs) {
			return c.route
		}
	}
	return t.fallback
}

// Routes returns the table in resolution order, catch-all included.
func (t *RouteTable) Routes() []domain.Route {
	out := make([]domain.Route, 0, len(t.routes)+1)
	for _, c := range t.routes {
		out = append(out, c.route)
	}
	return append(out, t.fallback)
}

func (c compiledRoute) matches(segs []string) bool {
	if c.wildcard {
		if len(segs) < len(c.segments) {
			return false
		}
	} else if len(segs) != len(c.segments) {
		return false
	}

	for i, want := range c.segments {
		if strings.HasPrefix(want, ":") {
			continue
		}
		if segs[i] != want {
			return false
		}
	}
	return true
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
