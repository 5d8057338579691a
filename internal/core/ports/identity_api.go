// Package ports declares the interfaces between the session-state core and
// the remote resource clients, plus the input payloads those clients accept.
// UI controllers and the participation coordinator depend on these
// interfaces, never on the HTTP implementations directly.
package ports

import (
	"context"

	"github.com/zenstudio/sessions-client/internal/core/domain"
)

// LoginInput carries the credentials submitted by the login form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the fields submitted by the registration form.
// Length limits mirror what the server enforces.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,min=3,max=20"`
	LastName  string `json:"lastName" validate:"required,min=3,max=20"`
	Password  string `json:"password" validate:"required,min=6,max=40"`
}

// IdentityAPI wraps the remote auth endpoints. The wrappers are fire-and-wait:
// they never touch session state themselves — applying a successful login to
// the store is the caller's responsibility.
type IdentityAPI interface {
	Login(ctx context.Context, in LoginInput) (domain.SessionIdentity, error)
	Register(ctx context.Context, in RegisterInput) error
}
