package portal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and records the most recent set of
// field violations so callers can render them after a failed check.
type Validator struct {
	validate *validator.Validate
	errors   map[string]string
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(validator.WithRequiredStructEnabled()),
	)
}

// MakeValidatorFrom wraps an existing validator engine, registering the
// application's custom rules on it.
func MakeValidatorFrom(v *validator.Validate) *Validator {
	registerCustomValidations(v)

	return &Validator{
		validate: v,
		errors:   make(map[string]string),
	}
}

// Passes validates the given struct and reports whether it is valid.
func (v *Validator) Passes(subject any) (bool, error) {
	v.errors = make(map[string]string)

	err := v.validate.Struct(subject)
	if err == nil {
		return true, nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		for _, violation := range violations {
			v.errors[violation.Namespace()] = violation.Tag()
		}

		return false, fmt.Errorf("validation failed: %w", err)
	}

	return false, fmt.Errorf("could not validate subject: %w", err)
}

// Rejects is the negated form of Passes.
func (v *Validator) Rejects(subject any) (bool, error) {
	ok, err := v.Passes(subject)

	return !ok, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	if len(v.errors) == 0 {
		return ""
	}

	data, err := json.Marshal(v.errors)
	if err != nil {
		return ""
	}

	return string(data)
}
