// Package form holds the fuel form: per-field validation state and the
// submit step that feeds the station solver.
package form

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Inline messages shown under a field that fails Validate.
const (
	MsgRequired = "This field is required."
	MsgFormat   = "Invalid format. Only integer numbers are allowed, separated by commas."
)

// listPattern accepts unsigned integers separated by a comma and optional spaces.
var listPattern = regexp.MustCompile(`^\d+(,\s*\d+)*$`)

// validate is the shared validator instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("fuellist", func(fl validator.FieldLevel) bool {
		return listPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Check is the outcome of validating one field.
type Check struct {
	Valid   bool
	Message string
}

// Validate checks a raw field value. It never fails on its own; problems are
// reported through the returned Check.
func Validate(raw string) Check {
	err := validate.Var(strings.TrimSpace(raw), "required,fuellist")
	if err == nil {
		return Check{Valid: true}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return Check{Message: MsgRequired}
	}
	return Check{Message: MsgFormat}
}
