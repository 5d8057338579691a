package api

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
	"github.com/zenstudio/sessions-client/internal/core/service"
	"github.com/zenstudio/sessions-client/internal/stub"
)

// newStubEnv wires the full client stack against the in-process stub API.
func newStubEnv(t *testing.T) (*Client, *service.SessionState) {
	t.Helper()

	store := stub.NewStore()
	if err := store.Seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	tokens := stub.NewTokenManager("e2e-secret", time.Hour)
	server := httptest.NewServer(stub.NewRouter(store, tokens, zerolog.Nop()))
	t.Cleanup(server.Close)

	state := service.NewSessionState()
	client, err := NewClient(server.URL, state, 5*time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("building client: %v", err)
	}
	return client, state
}

func login(t *testing.T, client *Client, state *service.SessionState, email, password string) domain.SessionIdentity {
	t.Helper()

	identity, err := NewIdentityClient(client).Login(context.Background(), ports.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	state.LogIn(identity)
	return identity
}

func TestEndToEnd_ParticipationWorkflow(t *testing.T) {
	client, state := newStubEnv(t)
	ctx := context.Background()

	identity := login(t, client, state, "user@studio.test", "password123")
	if !state.LoggedIn() {
		t.Fatalf("expected logged-in state after applying the identity")
	}

	sessions := NewSessionClient(client)
	coordinator := service.NewParticipationCoordinator(sessions, zerolog.Nop())

	view, err := coordinator.Load(ctx, 1, identity.UserID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if view.Participating {
		t.Fatalf("fresh account should not be participating yet")
	}

	view, err = coordinator.Join(ctx, 1, identity.UserID)
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if !view.Participating {
		t.Fatalf("confirmed join should show participation")
	}

	// A duplicate join is the server's call: conflict, displayed state
	// untouched.
	view, err = coordinator.Join(ctx, 1, identity.UserID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate join: expected conflict, got %v", err)
	}
	if !view.Participating {
		t.Fatalf("conflict must leave the last confirmed view in place")
	}

	view, err = coordinator.Leave(ctx, 1, identity.UserID)
	if err != nil {
		t.Fatalf("leave failed: %v", err)
	}
	if view.Participating {
		t.Fatalf("confirmed leave should clear participation")
	}
}

func TestEndToEnd_RejectedCredentialForcesLogout(t *testing.T) {
	client, state := newStubEnv(t)
	ctx := context.Background()

	login(t, client, state, "user@studio.test", "password123")

	// Simulate credential expiry: the server no longer accepts the token.
	state.LogIn(domain.SessionIdentity{Token: "expired-token", Type: "Bearer", UserID: 2})

	var transitions []bool
	state.Subscribe(func(loggedIn bool) { transitions = append(transitions, loggedIn) })

	_, err := NewSessionClient(client).ListAll(ctx)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if state.LoggedIn() {
		t.Fatalf("401 must clear the session state")
	}
	if len(transitions) != 2 || transitions[1] {
		t.Fatalf("subscriber should have observed the forced logout, got %v", transitions)
	}
}

func TestEndToEnd_AdminSessionManagement(t *testing.T) {
	client, state := newStubEnv(t)
	ctx := context.Background()

	identity := login(t, client, state, "admin@studio.test", "admin123")
	if !identity.HasRole(domain.RoleAdmin) {
		t.Fatalf("seeded admin should carry the admin capability")
	}

	sessions := NewSessionClient(client)
	created, err := sessions.Create(ctx, ports.SessionInput{
		Name:        "Evening Stretch",
		Date:        time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second),
		TeacherID:   2,
		Description: "Wind down before the weekend.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := sessions.Update(ctx, created.ID, ports.SessionInput{
		Name:        "Evening Stretch (extended)",
		Date:        created.Date,
		TeacherID:   2,
		Description: created.Description,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Evening Stretch (extended)" {
		t.Fatalf("unexpected updated session: %+v", updated)
	}

	if err := sessions.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := sessions.GetDetail(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleted session should 404, got %v", err)
	}
}

func TestEndToEnd_NonAdminForbidden(t *testing.T) {
	client, state := newStubEnv(t)
	ctx := context.Background()

	login(t, client, state, "user@studio.test", "password123")

	_, err := NewSessionClient(client).Create(ctx, ports.SessionInput{
		Name:        "Sneaky Session",
		Date:        time.Now().Add(24 * time.Hour),
		TeacherID:   1,
		Description: "should be rejected",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if !state.LoggedIn() {
		t.Fatalf("403 must not clear the session state")
	}
}

func TestEndToEnd_DeleteAccount(t *testing.T) {
	client, state := newStubEnv(t)
	ctx := context.Background()

	identity := login(t, client, state, "user@studio.test", "password123")

	users := NewUserClient(client)
	me, err := users.Get(ctx, identity.UserID)
	if err != nil {
		t.Fatalf("fetching profile failed: %v", err)
	}
	if me.Email != "user@studio.test" {
		t.Fatalf("unexpected profile: %+v", me)
	}

	if err := users.Delete(ctx, identity.UserID); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}
	// Logging out after account deletion is the controller's job.
	state.LogOut()
	if state.LoggedIn() {
		t.Fatalf("expected logged out after account deletion")
	}
}
