package navguard

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Route is the static metadata of a target view. RequiresAuth is a property
// of the view, configured up front, not derived from session state.
type Route struct {
	Path         string `yaml:"path"`
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	RequiresAuth bool   `yaml:"requires_auth"`
}

// RouteTable resolves paths to their route metadata.
type RouteTable struct {
	routes map[string]Route
}

// NewRouteTable builds a table from the given routes. Later duplicates of the
// same path win.
func NewRouteTable(routes ...Route) *RouteTable {
	t := &RouteTable{routes: make(map[string]Route, len(routes))}
	for _, r := range routes {
		t.routes[r.Path] = r
	}
	return t
}

// Lookup returns the route registered for path.
func (t *RouteTable) Lookup(path string) (Route, bool) {
	r, ok := t.routes[path]
	return r, ok
}

// Add registers a route, replacing any previous entry for the same path.
func (t *RouteTable) Add(r Route) {
	t.routes[r.Path] = r
}

// Len returns the number of registered routes.
func (t *RouteTable) Len() int {
	return len(t.routes)
}

// LoadRoutes parses a YAML route table of the form:
//
//	routes:
//	  - path: /dashboard
//	    name: dashboard
//	    title: Dashboard
//	    requires_auth: true
//	  - path: /login
//	    name: login
func LoadRoutes(r io.Reader) (*RouteTable, error) {
	var doc struct {
		Routes []Route `yaml:"routes"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRouteTable, err)
	}
	if len(doc.Routes) == 0 {
		return nil, fmt.Errorf("%w: no routes defined", ErrInvalidRouteTable)
	}
	return NewRouteTable(doc.Routes...), nil
}
