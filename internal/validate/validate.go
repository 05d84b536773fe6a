// Package validate turns go-playground/validator results into the
// per-field messages returned to API clients.
//
// Struct tags on the input types (see internal/types) declare the rules;
// this package owns the wording. Field names are reported by their JSON
// key ("firstName", not "FirstName") so clients can map errors straight
// back to their form fields.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError is one violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned by Struct when at least one rule fails. Fields keep
// struct declaration order.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// ─────────────────────────────────────────────────────────────────────────────
// messages maps JSON field name → failing tag → client-facing message.
//
// Only the first failing tag of a field is reported, so "First name is
// required" is never followed by a length complaint for the same field.
// ─────────────────────────────────────────────────────────────────────────────
var messages = map[string]map[string]string{
	"firstName": {
		"notblank": "First name is required",
		"min":      "First name must be between 2 and 50 characters",
		"max":      "First name must be between 2 and 50 characters",
	},
	"lastName": {
		"notblank": "Last name is required",
		"min":      "Last name must be between 2 and 50 characters",
		"max":      "Last name must be between 2 and 50 characters",
	},
	"email": {
		"notblank": "Email address is required",
		"max":      "Email address must not exceed 255 characters",
		"email":    "Email address should be valid",
	},
	"course": {
		"notblank": "Course is required",
		"min":      "Course name must be between 2 and 100 characters",
		"max":      "Course name must be between 2 and 100 characters",
	},
	"age": {
		"required": "Age is required",
		"min":      "Age must be at least 16",
		"max":      "Age must not exceed 100",
	},
	"password": {
		"notblank": "Password is required",
	},
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json tag.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := val.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validate: register notblank: %v", err))
	}

	return val
}

// Struct checks s against its validate tags. It returns nil or an *Error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe.Field(), fe.Tag()),
		})
	}
	return out
}

func message(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}
