package common

import (
	"fmt"

	"github.com/go-playground/validator"
)

// GenericValidator validates structs against their `validate` tags
type GenericValidator struct {
	Validator *validator.Validate
}

// NewGenericValidator creates a validator with the default tag set
func NewGenericValidator() *GenericValidator {
	return &GenericValidator{Validator: validator.New()}
}

func (gv *GenericValidator) Validate(i interface{}) error {
	if gv.Validator == nil {
		gv.Validator = validator.New()
	}
	if err := gv.Validator.Struct(i); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
