package service

import (
	"strconv"
	"strings"

	"github.com/atinyakov/staffdeck/internal/models"
)

// Decision is the route guard's verdict for a navigation attempt.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login view.
	RedirectLogin
	// RedirectUnauthorized sends an authenticated visitor lacking the
	// required role to the unauthorized view.
	RedirectUnauthorized
	// NotFound is the verdict for a path outside the route table.
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect:/login"
	case RedirectUnauthorized:
		return "redirect:/unauthorized"
	case NotFound:
		return "not-found"
	}
	return "unknown"
}

// Route is one entry of the navigational surface.
type Route struct {
	// Path is the route pattern; "/employee/{id}" carries an id segment.
	Path string
	// Public routes render without a session.
	Public bool
	// Roles, when non-empty, restricts the route to sessions holding one
	// of the listed roles. Empty means any authenticated session.
	Roles []models.Role
	// EmployeeID is set on a resolved "/employee/{id}" route.
	EmployeeID int
}

// RouteGuard decides allow / redirect for every navigation, reading the
// session fresh on each call so a logout revokes gated views immediately.
type RouteGuard struct {
	session *SessionManager
}

// NewRouteGuard returns a guard over the given session manager.
func NewRouteGuard(session *SessionManager) *RouteGuard {
	return &RouteGuard{session: session}
}

// Resolve maps a concrete path onto the route table. The second result is
// false for paths outside the table.
func (g *RouteGuard) Resolve(path string) (Route, bool) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	switch path {
	case "/login":
		return Route{Path: "/login", Public: true}, true
	case "/unauthorized":
		return Route{Path: "/unauthorized", Public: true}, true
	case "/":
		return Route{Path: "/"}, true
	case "/bookmarks":
		return Route{Path: "/bookmarks"}, true
	case "/analytics":
		return Route{Path: "/analytics", Roles: []models.Role{models.RoleAdmin, models.RoleHR}}, true
	}

	if rest, ok := strings.CutPrefix(path, "/employee/"); ok && !strings.Contains(rest, "/") {
		id, err := strconv.Atoi(rest)
		if err == nil && id > 0 {
			return Route{Path: "/employee/{id}", EmployeeID: id}, true
		}
	}
	return Route{}, false
}

// Check applies the gating contract to a resolved route:
// no session on a protected route redirects to login; a session lacking a
// required role redirects to unauthorized; everything else is allowed.
func (g *RouteGuard) Check(route Route) Decision {
	if route.Public {
		return Allow
	}
	if !g.session.IsAuthenticated() {
		return RedirectLogin
	}
	if len(route.Roles) > 0 && !g.session.HasRole(route.Roles...) {
		return RedirectUnauthorized
	}
	return Allow
}

// Decide resolves and checks a path in one step.
func (g *RouteGuard) Decide(path string) Decision {
	route, ok := g.Resolve(path)
	if !ok {
		return NotFound
	}
	return g.Check(route)
}
