package domain

import "testing"

func TestSessionIdentity_HasRole(t *testing.T) {
	member := SessionIdentity{UserID: 1}
	admin := SessionIdentity{UserID: 2, Admin: true}

	if !member.HasRole(RoleUser) {
		t.Fatalf("every identity should carry RoleUser")
	}
	if member.HasRole(RoleAdmin) {
		t.Fatalf("non-admin must not carry RoleAdmin")
	}
	if !admin.HasRole(RoleAdmin) {
		t.Fatalf("admin should carry RoleAdmin")
	}
	if member.HasRole(Role("unknown")) {
		t.Fatalf("unknown capability must be denied")
	}
}

func TestSessionIdentity_AuthorizationValue(t *testing.T) {
	id := SessionIdentity{Token: "mock-token", Type: "Bearer"}
	if got := id.AuthorizationValue(); got != "Bearer mock-token" {
		t.Fatalf("unexpected header value: %q", got)
	}
}

func TestSession_HasParticipant(t *testing.T) {
	s := Session{Users: []int64{1, 2, 3}}

	if !s.HasParticipant(1) {
		t.Fatalf("expected user 1 to be a participant")
	}
	if s.HasParticipant(4) {
		t.Fatalf("expected user 4 not to be a participant")
	}
	if (Session{}).HasParticipant(1) {
		t.Fatalf("empty session must have no participants")
	}
}
