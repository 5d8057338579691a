package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
)

// TeacherClient wraps the teacher endpoints.
type TeacherClient struct {
	c *Client
}

var _ ports.TeacherAPI = (*TeacherClient)(nil)

func NewTeacherClient(c *Client) *TeacherClient {
	return &TeacherClient{c: c}
}

func (tc *TeacherClient) List(ctx context.Context) ([]domain.Teacher, error) {
	var teachers []domain.Teacher
	if err := tc.c.call(ctx, http.MethodGet, "api/teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (tc *TeacherClient) Get(ctx context.Context, id int64) (*domain.Teacher, error) {
	var teacher domain.Teacher
	if err := tc.c.call(ctx, http.MethodGet, fmt.Sprintf("api/teacher/%d", id), nil, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}
