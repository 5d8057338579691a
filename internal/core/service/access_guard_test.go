package service

import (
	"testing"

	"github.com/zenstudio/sessions-client/internal/core/domain"
)

func TestAccessGuard_PublicRoute(t *testing.T) {
	guard := NewAccessGuard(NewSessionState())

	decision := guard.Check(Route{Name: RouteLogin})
	if !decision.Allowed {
		t.Fatalf("public route must always be allowed")
	}
}

func TestAccessGuard_DeniesUnauthenticated(t *testing.T) {
	guard := NewAccessGuard(NewSessionState())

	decision := guard.Check(Route{Name: RouteSessions, RequiresAuth: true})
	if decision.Allowed {
		t.Fatalf("unauthenticated navigation must be denied")
	}
	if decision.RedirectTo != RouteLogin {
		t.Fatalf("expected redirect to login, got %q", decision.RedirectTo)
	}
}

func TestAccessGuard_AllowsAuthenticated(t *testing.T) {
	state := NewSessionState()
	state.LogIn(testIdentity())
	guard := NewAccessGuard(state)

	decision := guard.Check(Route{Name: RouteSessions, RequiresAuth: true})
	if !decision.Allowed {
		t.Fatalf("authenticated navigation should be allowed")
	}
}

func TestAccessGuard_RoleGatedRoute(t *testing.T) {
	state := NewSessionState()
	state.LogIn(testIdentity()) // not an admin
	guard := NewAccessGuard(state)
	route := Route{Name: "create", RequiresAuth: true, RequiredRole: domain.RoleAdmin}

	decision := guard.Check(route)
	if decision.Allowed {
		t.Fatalf("non-admin must be denied the admin route")
	}
	if decision.RedirectTo != RouteSessions {
		t.Fatalf("expected redirect to sessions, got %q", decision.RedirectTo)
	}

	admin := testIdentity()
	admin.Admin = true
	state.LogIn(admin)

	if decision := guard.Check(route); !decision.Allowed {
		t.Fatalf("admin should be allowed the admin route")
	}
}

func TestAccessGuard_SeesLogoutImmediately(t *testing.T) {
	state := NewSessionState()
	state.LogIn(testIdentity())
	guard := NewAccessGuard(state)

	state.LogOut()

	if decision := guard.Check(Route{Name: RouteSessions, RequiresAuth: true}); decision.Allowed {
		t.Fatalf("navigation after logout must be denied")
	}
}
