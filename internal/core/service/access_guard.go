package service

import "github.com/zenstudio/sessions-client/internal/core/domain"

// Route names used for redirects.
const (
	RouteLogin    = "login"
	RouteSessions = "sessions"
)

// Route describes a navigable view and what it requires of the viewer.
// A zero RequiredRole means any authenticated viewer may enter.
type Route struct {
	Name         string
	RequiresAuth bool
	RequiredRole domain.Role
}

// Decision is the outcome of a guard check. When Allowed is false the
// navigation must be aborted and the viewer sent to RedirectTo instead;
// the protected view is never instantiated.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// AccessGuard permits or denies navigation based on the session state. The
// check is synchronous: it reads the store at navigation time, so a logout
// applied by the request decorator takes effect on the very next navigation.
type AccessGuard struct {
	state *SessionState
}

func NewAccessGuard(state *SessionState) *AccessGuard {
	return &AccessGuard{state: state}
}

// Check evaluates a navigation attempt. Unauthenticated viewers are redirected
// to the login view; authenticated viewers missing a required capability are
// redirected to the session list.
func (g *AccessGuard) Check(route Route) Decision {
	if !route.RequiresAuth {
		return Decision{Allowed: true}
	}

	identity, ok := g.state.Identity()
	if !ok {
		return Decision{RedirectTo: RouteLogin}
	}
	if route.RequiredRole != "" && !identity.HasRole(route.RequiredRole) {
		return Decision{RedirectTo: RouteSessions}
	}
	return Decision{Allowed: true}
}
