package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation wraps validator failures.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps query or path binding failures.
	ErrBinding = errors.New("binding failed")
)

// Validator returns the shared validator. Field errors are keyed by the
// field's form, uri or json name, in that order.
var Validator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)

	return v
})

func wireName(fld reflect.StructField) string {
	for _, key := range []string{"form", "uri", "json"} {
		switch name, _, _ := strings.Cut(fld.Tag.Get(key), ","); name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return ""
}

// Validate runs struct validation on v.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindQueryAndValidate binds the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// IsValidationError reports whether err carries validator field errors.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// ValidationErrors maps each failing field to a readable message. Errors that
// do not come from the validator yield an empty map.
func ValidationErrors(err error) map[string]string {
	out := map[string]string{}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			out[fe.Field()] = validationMessage(fe)
		}
	}

	return out
}

func validationMessage(fe validator.FieldError) string {
	p := fe.Param()

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "uuid":
		return "must be a valid UUID"
	case "min", "max":
		return minMaxMessage(fe.Tag(), p, fe.Kind())
	case "gte":
		return "must be greater than or equal to " + p
	case "lte":
		return "must be less than or equal to " + p
	case "gt":
		return "must be greater than " + p
	case "lt":
		return "must be less than " + p
	case "oneof":
		return "must be one of: " + p
	default:
		return "failed validation: " + fe.Tag()
	}
}

func minMaxMessage(tag, param string, kind reflect.Kind) string {
	bound := "at least"
	if tag == "max" {
		bound = "at most"
	}

	msg := "must be " + bound + " " + param
	if kind == reflect.String {
		msg += " characters"
	}

	return msg
}
