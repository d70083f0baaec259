package utils

import (
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// NewOutOfRangeFieldError is used when a config field holds a value outside of its allowed range.
func NewOutOfRangeFieldError(path, field string, value float64, bound string) error {
	return goutils.NewConfigValidationError(path, errors.Errorf("%q must be %s, got %v", field, bound, value))
}

// NewFieldRequiredError is used when a required config field is missing.
func NewFieldRequiredError(path, field string) error {
	return goutils.NewConfigValidationFieldRequiredError(path, field)
}
