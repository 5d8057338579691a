package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
)

// SessionClient wraps the session collection endpoints. Non-2xx responses are
// classified into the error taxonomy; reconciliation of participation state
// happens one layer up in the coordinator.
type SessionClient struct {
	c *Client
}

var _ ports.SessionAPI = (*SessionClient)(nil)

func NewSessionClient(c *Client) *SessionClient {
	return &SessionClient{c: c}
}

func (sc *SessionClient) ListAll(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := sc.c.call(ctx, http.MethodGet, "api/session", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (sc *SessionClient) GetDetail(ctx context.Context, id int64) (*domain.Session, error) {
	var session domain.Session
	if err := sc.c.call(ctx, http.MethodGet, fmt.Sprintf("api/session/%d", id), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (sc *SessionClient) Create(ctx context.Context, in ports.SessionInput) (*domain.Session, error) {
	if err := sc.c.forms.Validate(in); err != nil {
		return nil, err
	}
	var session domain.Session
	if err := sc.c.call(ctx, http.MethodPost, "api/session", in, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (sc *SessionClient) Update(ctx context.Context, id int64, in ports.SessionInput) (*domain.Session, error) {
	if err := sc.c.forms.Validate(in); err != nil {
		return nil, err
	}
	var session domain.Session
	if err := sc.c.call(ctx, http.MethodPut, fmt.Sprintf("api/session/%d", id), in, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (sc *SessionClient) Delete(ctx context.Context, id int64) error {
	return sc.c.call(ctx, http.MethodDelete, fmt.Sprintf("api/session/%d", id), nil, nil)
}

// Participate sends the join toggle: no request body, nothing returned on
// success. Whether a duplicate join is rejected is the server's call.
func (sc *SessionClient) Participate(ctx context.Context, sessionID, userID int64) error {
	return sc.c.call(ctx, http.MethodPost, participatePath(sessionID, userID), nil, nil)
}

func (sc *SessionClient) Unparticipate(ctx context.Context, sessionID, userID int64) error {
	return sc.c.call(ctx, http.MethodDelete, participatePath(sessionID, userID), nil, nil)
}

func participatePath(sessionID, userID int64) string {
	return fmt.Sprintf("api/session/%d/participate/%d", sessionID, userID)
}
