package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
)

// UserClient wraps the user endpoints.
type UserClient struct {
	c *Client
}

var _ ports.UserAPI = (*UserClient)(nil)

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (uc *UserClient) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := uc.c.call(ctx, http.MethodGet, fmt.Sprintf("api/user/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *UserClient) Delete(ctx context.Context, id int64) error {
	return uc.c.call(ctx, http.MethodDelete, fmt.Sprintf("api/user/%d", id), nil, nil)
}
