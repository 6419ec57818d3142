// Package validation wraps go-playground/validator for request payloads.
// Struct tags declare field requirements; failures are mapped onto the
// domain error taxonomy so handlers can return them directly.
package validation

import (
	"net/http"

	"shopkart/internal/model"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// Check validates a payload struct against its tags and converts the
// first failure into a domain error.
func Check(v *validatorv10.Validate, payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	errs, ok := err.(validatorv10.ValidationErrors)
	if !ok || len(errs) == 0 {
		return model.ErrMissingField
	}

	first := errs[0]
	switch first.Tag() {
	case "required", "dive":
		return model.ErrMissingField
	case "min", "gte":
		if first.Kind().String() == "int" {
			return model.ErrInvalidQuantity
		}
		return model.NewDomainError(model.ErrCodeMissingField, "Field "+first.Field()+" is invalid", http.StatusBadRequest)
	case "email":
		return model.NewDomainError(model.ErrCodeMissingField, "A valid email is required", http.StatusBadRequest)
	case "oneof":
		return model.ErrInvalidStatus
	default:
		return model.NewDomainError(model.ErrCodeMissingField, "Field "+first.Field()+" is invalid", http.StatusBadRequest)
	}
}
