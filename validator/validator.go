package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/vocdoni/personnummer/personnummer"
)

// Validator is a wrapper around the go-playground/validator package.
type Validator struct {
	validator *validator.Validate
}

// New creates a new Validator instance.
func New() *Validator {
	v := validator.New()

	// Register custom validation functions
	_ = v.RegisterValidation("personnummer", validatePersonnummer)

	return &Validator{
		validator: v,
	}
}

// Validate validates a struct using the validator package.
func (v *Validator) Validate(s interface{}) error {
	return v.validator.Struct(s)
}

// validatePersonnummer validates a Swedish personal identity number in any of
// the accepted layouts.
func validatePersonnummer(fl validator.FieldLevel) bool {
	// If the field is empty, it's valid (use required tag if it's required)
	if fl.Field().String() == "" {
		return true
	}

	return personnummer.IsValid(fl.Field().String())
}
