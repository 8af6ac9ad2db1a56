package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// FieldViolation describes a single failed constraint on one payload field.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// NewValidationError builds a 400 error carrying the complete list of field
// violations. Validation never stops at the first failure: the caller is
// expected to pass every violated field.
func NewValidationError(violations []FieldViolation) *ApiErr {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}

	apiErr := &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", ")),
		Violations: violations,
	}
	if len(violations) == 1 {
		apiErr.Field = violations[0].Field
	}
	return apiErr
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
