package middlewares

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/foundit/internal/apperror"
)

type structValidator struct {
	validate *validator.Validate
}

// NewValidator returns an echo.Validator checking `validate` struct tags.
// Any failing required field is reported as an apperror.MissingFields.
func NewValidator() echo.Validator {
	return &structValidator{
		validate: validator.New(),
	}
}

// Validate implements the echo.Validator interface.
func (v *structValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	if _, ok := err.(validator.ValidationErrors); ok {
		return apperror.MissingFields()
	}
	return err
}
