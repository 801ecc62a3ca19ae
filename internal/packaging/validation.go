package packaging

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var namePattern = regexp.MustCompile(`(?i)^[a-z0-9](?:[a-z0-9._-]*[a-z0-9])?$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func descriptorValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("pkgname", func(fl validator.FieldLevel) bool {
			return namePattern.MatchString(fl.Field().String())
		})
	})

	return validate
}

func validateDescriptor(d *Descriptor) error {
	err := descriptorValidator().Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDeclaration, strings.Join(msgs, "; "))
}
