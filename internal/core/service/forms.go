package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zenstudio/sessions-client/internal/core/domain"
)

// FormValidator checks form input against its validate tags before any
// request is sent. A failure is fatal only to submission: the request never
// leaves the process and the caller fixes the input and retries.
type FormValidator struct {
	v *validator.Validate
}

func NewFormValidator() *FormValidator {
	return &FormValidator{v: validator.New()}
}

// Validate returns a *domain.ValidationError listing every unmet constraint,
// or nil when the input is acceptable.
func (fv *FormValidator) Validate(in any) error {
	err := fv.v.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		problems = append(problems, fieldProblem(fe))
	}
	return &domain.ValidationError{Problems: problems}
}

// fieldProblem converts a single failed constraint into a human-readable
// message.
func fieldProblem(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
