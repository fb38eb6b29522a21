package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/catalogadmin/console/internal/pkg/validation"
)

// echoValidator wraps the shared validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validation.Validator
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator(v *validation.Validator) echo.Validator {
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures are 422 with
// every problem joined into the detail.
func (ev *echoValidator) Validate(i any) error {
	problems, err := ev.v.Problems(i)
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, strings.Join(problems, "; "))
	}
	return nil
}
