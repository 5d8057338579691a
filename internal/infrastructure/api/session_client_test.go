package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
	"github.com/zenstudio/sessions-client/internal/core/service"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *service.SessionState, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	state := service.NewSessionState()
	client, err := NewClient(server.URL, state, 5*time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("building client: %v", err)
	}
	return client, state, server
}

func TestSessionClient_ListAll(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/session" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]domain.Session{
			{ID: 1, Name: "Morning Flow", Users: []int64{1, 2, 3}},
		})
	}))

	sessions, err := NewSessionClient(client).ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Name != "Morning Flow" || len(sessions[0].Users) != 3 {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
}

func TestSessionClient_ParticipateSendsNoBody(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/session/7/participate/4" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Fatalf("participation toggle must carry no body, got %q", body)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := NewSessionClient(client).Participate(context.Background(), 7, 4); err != nil {
		t.Fatalf("participate failed: %v", err)
	}
}

func TestSessionClient_UnparticipateUsesDelete(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/session/7/participate/4" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := NewSessionClient(client).Unparticipate(context.Background(), 7, 4); err != nil {
		t.Fatalf("unparticipate failed: %v", err)
	}
}

func TestSessionClient_StatusClassification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusInternalServerError, domain.ErrServer},
	}

	for _, tc := range cases {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		err := NewSessionClient(client).Participate(context.Background(), 7, 4)
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}
}

func TestSessionClient_CreateValidatesBeforeSending(t *testing.T) {
	reached := false
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	_, err := NewSessionClient(client).Create(context.Background(), ports.SessionInput{Name: "No description"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if reached {
		t.Fatalf("invalid form must block the request from being sent")
	}
}

func TestSessionClient_GetDetail(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/session/42" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(domain.Session{ID: 42, Name: "Evening Stretch"})
	}))

	session, err := NewSessionClient(client).GetDetail(context.Background(), 42)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if session.ID != 42 || session.Name != "Evening Stretch" {
		t.Fatalf("unexpected session: %+v", session)
	}
}
