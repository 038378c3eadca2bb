// Package routefile loads a route table override from a TOML file:
//
//	[[route]]
//	name    = "dashboard"
//	pattern = "/dashboard/*"
//	policy  = "authenticated"
package routefile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/homestay/booking-gate/internal/core/domain"
)

type file struct {
	Route []routeEntry `toml:"route"`
}

type routeEntry struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
	Policy  string `toml:"policy"`
}

// Load reads and decodes the routes declared at path.
func Load(path string) ([]domain.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML route declarations. Unknown keys are rejected.
func Parse(data []byte) ([]domain.Route, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode route file: %w", err)
	}
	if len(f.Route) == 0 {
		return nil, fmt.Errorf("%w: route file declares no routes", domain.ErrInvalidRoute)
	}

	routes := make([]domain.Route, 0, len(f.Route))
	for _, r := range f.Route {
		policy, err := domain.ParsePolicy(r.Policy)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}
		routes = append(routes, domain.Route{Name: r.Name, Pattern: r.Pattern, Policy: policy})
	}
	return routes, nil
}
