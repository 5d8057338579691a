package stub

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/service"
)

// echoValidator adapts the shared form validator so Echo can call
// c.Validate(req). The stub enforces the same constraints the client checks
// before submitting, so a client that skips validation still gets rejected.
type echoValidator struct {
	forms *service.FormValidator
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{forms: service.NewFormValidator()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.forms.Validate(i)
	if err == nil {
		return nil
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	return err
}
