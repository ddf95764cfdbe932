// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "bazaar/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance so echo's c.Validate works on
// request DTOs carrying `validate` tags.
type EchoValidator struct {
	validate *playground.Validate
}

// New builds the validator with struct-tag based rules.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error handler renders a 400 envelope.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
