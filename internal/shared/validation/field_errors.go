// Package validation converts binding errors into field-keyed error maps.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrorsKey is the key used for errors that are not tied to a single field.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrors maps a request field name to the list of validation messages for it.
// It marshals directly into the 400 response body.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// NonField returns a FieldErrors carrying a single aggregated error,
// used when the failure must not be attributed to one field (e.g. bad credentials).
func NonField(message string) FieldErrors {
	return FieldErrors{NonFieldErrorsKey: {message}}
}

// FromBindingError translates an error from gin's ShouldBindJSON into a
// field-keyed map. It returns nil when the error is not a validator error
// (e.g. malformed JSON), in which case the caller should respond with a
// generic bad-request body.
func FromBindingError(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		// Gin's validator reports the struct field name; the JSON fields
		// of the DTOs are the lowercased struct field names.
		out.Add(strings.ToLower(fe.Field()), messageForTag(fe))
	}
	return out
}

// messageForTag maps a failed validation tag to a client-facing message.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	default:
		return "This field is invalid."
	}
}
