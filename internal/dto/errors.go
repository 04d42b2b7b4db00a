package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation errors are keyed by the wire name of the offending field, so the
// binding validator has to report json/form tag names rather than Go struct
// field names.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
}

// ValidationErrorResponse maps field names to their violation messages,
// returned with a 400.
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// FieldErrors converts a gin binding error into a field->messages mapping.
// Non-validator errors (malformed JSON and the like) land under
// non_field_errors.
func FieldErrors(err error) *ValidationErrorResponse {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := fe.Field()
			out[field] = append(out[field], violationMessage(fe))
		}
	} else {
		out["non_field_errors"] = append(out["non_field_errors"], err.Error())
	}

	return &ValidationErrorResponse{Errors: out}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "oneof":
		return "Value must be one of: " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}
