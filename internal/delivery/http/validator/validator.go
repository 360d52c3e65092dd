// Package validator plugs request struct validation into Echo.
package validator

import (
	domainerrors "gobarber/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

// echoValidator satisfies echo.Validator using go-playground struct tags.
type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the request validator installed on the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and translates failures into the shared error type
// so the error handler renders them as a 400 with field details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
