package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator.
// It backs the Bind/Validate step in every API handler, so DTOs such as
// ParseTextRequest and ProcessMeetingRequest can declare constraints with
// `validate` tags.
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator for registration on the echo instance
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate performs struct validation against the DTO's validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
