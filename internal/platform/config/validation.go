package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields under their koanf keys, so messages name the same
// keys as the YAML files and APP_ variables.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return name
	})

	return v
}()

// Validate checks c and lists every invalid key. The service refuses to start
// on error.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, describe(fe))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func describe(fe validator.FieldError) string {
	key, p := keyPath(fe.Namespace()), fe.Param()

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return key + " is required when " + p
	case "min":
		return key + " must be at least " + p
	case "max":
		return key + " must be at most " + p
	case "oneof":
		return key + " must be one of: " + p
	case "hostname_port":
		return key + " must be in host:port form"
	default:
		return key + " failed validation: " + fe.Tag()
	}
}

// keyPath drops the root struct name: "Config.log.file.max_size" becomes
// "log.file.max_size".
func keyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
