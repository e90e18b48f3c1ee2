package portal

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thanzeeha/portfolio4/pkg/scheduler"
)

func registerCustomValidations(v *validator.Validate) {
	if v == nil {
		return
	}

	if err := v.RegisterValidation("cron", validateCronExpression); err != nil {
		panic("portal: failed to register cron validation: " + err.Error())
	}
}

// validateCronExpression parses with the scheduler's own grammar, so an
// expression that passes env validation is one the backup scheduler will
// accept at boot.
func validateCronExpression(fl validator.FieldLevel) bool {
	expr := strings.TrimSpace(fl.Field().String())
	if expr == "" {
		return false
	}

	_, err := scheduler.DefaultParser.Parse(expr)
	return err == nil
}
