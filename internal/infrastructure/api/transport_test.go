package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/service"
)

func mockIdentity() domain.SessionIdentity {
	return domain.SessionIdentity{
		Token:    "mock-token",
		Type:     "Bearer",
		UserID:   1,
		Username: "test@example.com",
	}
}

func TestAuthTransport_AttachesCredential(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	state := service.NewSessionState()
	client := &http.Client{Transport: &AuthTransport{State: state}}

	// Unauthenticated requests go out unchanged.
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if gotHeader != "" {
		t.Fatalf("expected no Authorization header, got %q", gotHeader)
	}

	state.LogIn(mockIdentity())

	resp, err = client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if gotHeader != "Bearer mock-token" {
		t.Fatalf("expected \"Bearer mock-token\", got %q", gotHeader)
	}
}

func TestAuthTransport_UnauthorizedForcesLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	state := service.NewSessionState()
	state.LogIn(mockIdentity())

	var transitions []bool
	state.Subscribe(func(loggedIn bool) { transitions = append(transitions, loggedIn) })

	client := &http.Client{Transport: &AuthTransport{State: state}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if state.LoggedIn() {
		t.Fatalf("401 must force a logout before the response propagates")
	}
	if len(transitions) != 2 || transitions[1] {
		t.Fatalf("subscriber should have seen the forced logout, got %v", transitions)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("original response must still reach the caller, got %d", resp.StatusCode)
	}
}

func TestAuthTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	state := service.NewSessionState()
	state.LogIn(mockIdentity())

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	client := &http.Client{Transport: &AuthTransport{State: state}}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if req.Header.Get("Authorization") != "" {
		t.Fatalf("decorator must clone the request, not mutate it")
	}
}
