package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredField = errors.New("missing required field")
)

// MissingFieldError reports which required field was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Is makes every MissingFieldError match [ErrMissingRequiredField].
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
