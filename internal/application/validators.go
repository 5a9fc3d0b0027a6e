package application

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
)

// RegisterConfigValidators registers the custom validation functions used
// by RunConfig with the validator instance.
// RegisterConfigValidators adds the nonblank tag and a struct-level rule
// for GroupsConfig that rejects names equal under Unicode case folding.
// RegisterConfigValidators returns an error if any validator registration
// fails.
func RegisterConfigValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("nonblank", validateNonBlank); err != nil {
		return fmt.Errorf("failed to register nonblank validator: %w", err)
	}
	v.RegisterStructValidation(validateGroups, GroupsConfig{})
	return nil
}

// validateNonBlank reports whether a string field has content other than
// whitespace.
func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateGroups rejects group pairs that would match the same rows.
func validateGroups(sl validator.StructLevel) {
	groups := sl.Current().Interface().(GroupsConfig)

	first := strings.TrimSpace(groups.First)
	second := strings.TrimSpace(groups.Second)
	if first == "" || second == "" {
		if first == "" {
			sl.ReportError(groups.First, "First", "first", "nonblank", "")
		}
		if second == "" {
			sl.ReportError(groups.Second, "Second", "second", "nonblank", "")
		}
		return
	}

	fold := cases.Fold()
	if fold.String(first) == fold.String(second) {
		sl.ReportError(groups.Second, "Second", "second", "distinctgroup", groups.First)
	}
}
