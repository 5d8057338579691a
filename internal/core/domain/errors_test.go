package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFromStatus(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{200, nil},
		{201, nil},
		{204, nil},
		{401, ErrUnauthenticated},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{409, ErrConflict},
		{500, ErrServer},
		{503, ErrServer},
	}

	for _, tc := range cases {
		got := ErrorFromStatus(tc.status)
		if tc.want == nil {
			if got != nil {
				t.Fatalf("status %d: expected nil, got %v", tc.status, got)
			}
			continue
		}
		if !errors.Is(got, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, got)
		}
	}
}

func TestErrorFromStatus_UndistinguishedCode(t *testing.T) {
	err := ErrorFromStatus(418)
	if !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestIsValidation(t *testing.T) {
	ve := &ValidationError{Problems: []string{"email is required"}}
	if !IsValidation(ve) {
		t.Fatalf("expected validation error to be recognised")
	}
	if !IsValidation(fmt.Errorf("submit: %w", ve)) {
		t.Fatalf("expected wrapped validation error to be recognised")
	}
	if IsValidation(ErrConflict) {
		t.Fatalf("conflict must not classify as validation")
	}
}
