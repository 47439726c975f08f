package service

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"latitude/internal/domain"
)

// validationError converts an ozzo validation result into the domain's
// field-level ValidationError. Field order is stabilized so responses and
// tests do not depend on map iteration.
func validationError(err error) error {
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validation.Errors); ok {
		fields := make([]string, 0, len(fieldErrs))
		for field, ferr := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s %s", field, ferr.Error()))
		}
		sort.Strings(fields)
		return &domain.ValidationError{Fields: fields}
	}

	return &domain.ValidationError{Fields: []string{err.Error()}}
}
