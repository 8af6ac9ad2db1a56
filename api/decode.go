package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/3d-debian/portfolio-backend/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the wire field names, not the Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// decodeAndValidate reads a JSON request body into dst and checks it against
// the insertable shape's constraints. Validation never stops at the first
// failure: the returned error carries one violation per failed field. A JSON
// type mismatch on a known field (e.g. a string where a number belongs) is
// reported as a violation on that field rather than a generic decode error.
func decodeAndValidate(r *http.Request, dst any) error {
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return errs.NewUnsupportedMediaTypeError(contentType)
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return errs.NewValidationError([]errs.FieldViolation{{
				Field:   typeErr.Field,
				Rule:    "type",
				Message: fmt.Sprintf("must be of type %s", typeErr.Type),
			}})
		}
		return errs.NewInvalidJSONError(err)
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errs.NewInternalErrorWithCause("validation failed", err)
		}

		violations := make([]errs.FieldViolation, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			violations = append(violations, errs.FieldViolation{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: violationMessage(fe),
			})
		}
		return errs.NewValidationError(violations)
	}

	return nil
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
