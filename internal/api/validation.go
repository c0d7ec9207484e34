package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Validation is all-or-nothing: either the whole input is accepted, or the
// request is rejected with a field/reason list.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Violations become a 400 with one
// "field: reason" entry per failed rule.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, fieldReason(fe))
	}
	return echo.NewHTTPError(http.StatusBadRequest, strings.Join(reasons, "; "))
}

func fieldReason(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid4":
		return field + " must be a valid UUID"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
