package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
)

// IdentityClient wraps the auth endpoints. It is fire-and-wait: it never
// touches session state, and it surfaces any non-2xx as ErrRequestFailed
// without interpreting the status code — messaging and session policy belong
// to the caller.
type IdentityClient struct {
	c *Client
}

var _ ports.IdentityAPI = (*IdentityClient)(nil)

func NewIdentityClient(c *Client) *IdentityClient {
	return &IdentityClient{c: c}
}

func (ic *IdentityClient) Login(ctx context.Context, in ports.LoginInput) (domain.SessionIdentity, error) {
	if err := ic.c.forms.Validate(in); err != nil {
		return domain.SessionIdentity{}, err
	}

	var identity domain.SessionIdentity
	status, err := ic.c.roundTrip(ctx, http.MethodPost, "api/auth/login", in, &identity)
	if err != nil {
		return domain.SessionIdentity{}, err
	}
	if status < 200 || status >= 300 {
		return domain.SessionIdentity{}, fmt.Errorf("login: status %d: %w", status, domain.ErrRequestFailed)
	}
	return identity, nil
}

func (ic *IdentityClient) Register(ctx context.Context, in ports.RegisterInput) error {
	if err := ic.c.forms.Validate(in); err != nil {
		return err
	}

	status, err := ic.c.roundTrip(ctx, http.MethodPost, "api/auth/register", in, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("register: status %d: %w", status, domain.ErrRequestFailed)
	}
	return nil
}
