package api

import (
	"net/http"

	"github.com/zenstudio/sessions-client/internal/core/service"
)

// AuthTransport decorates every outgoing request with the current credential
// from the session state, when one is present; unauthenticated requests pass
// through unchanged. A 401 response forces a logout on the store before the
// response propagates, so a rejected credential never lingers past the
// request that exposed it.
type AuthTransport struct {
	// Base is the underlying round tripper. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper

	State *service.SessionState
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if identity, ok := t.State.Identity(); ok {
		// Per RoundTripper contract the request must not be mutated.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", identity.AuthorizationValue())
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.State.LogOut()
	}
	return resp, nil
}
