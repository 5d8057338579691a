package ports

import (
	"context"
	"time"

	"github.com/zenstudio/sessions-client/internal/core/domain"
)

// SessionInput carries the fields submitted by the session create/edit form.
type SessionInput struct {
	Name        string    `json:"name" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	TeacherID   int64     `json:"teacher_id" validate:"required"`
	Description string    `json:"description" validate:"required,max=2000"`
}

// SessionAPI wraps the remote session collection. Participation toggles send
// no request body and return nothing on success; whether a duplicate join is
// rejected is the server's decision, surfaced as domain.ErrConflict.
type SessionAPI interface {
	ListAll(ctx context.Context) ([]domain.Session, error)
	GetDetail(ctx context.Context, id int64) (*domain.Session, error)
	Create(ctx context.Context, in SessionInput) (*domain.Session, error)
	Update(ctx context.Context, id int64, in SessionInput) (*domain.Session, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, sessionID, userID int64) error
	Unparticipate(ctx context.Context, sessionID, userID int64) error
}

// UserAPI wraps the remote user endpoints.
type UserAPI interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherAPI wraps the remote teacher endpoints.
type TeacherAPI interface {
	List(ctx context.Context) ([]domain.Teacher, error)
	Get(ctx context.Context, id int64) (*domain.Teacher, error)
}
