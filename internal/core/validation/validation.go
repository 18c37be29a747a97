// Package validation wraps go-playground/validator with human readable messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate

	decimalBR = regexp.MustCompile(`^\d+(,\d+)?$`)
)

// Validator returns the shared validator instance.
// Field names in messages come from the json tag when present.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		// decimal_br accepts decimals written with a comma separator, e.g. "150,00".
		_ = validate.RegisterValidation("decimal_br", func(fl validator.FieldLevel) bool {
			return decimalBR.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Error lists every field that failed validation.
type Error struct {
	Fields []string
}

// Error implements error.
func (e *Error) Error() string {
	return strings.Join(e.Fields, "; ")
}

// Struct validates s and returns *Error when any rule fails.
func Struct(s any) error {
	if err := Validator().Struct(s); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return &Error{Fields: msgs}
		}
		return err
	}
	return nil
}

// fieldError converts a single FieldError into a human readable message.
func fieldError(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "numeric":
		return field + " must be numeric"
	case "alpha":
		return field + " must contain only letters"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s) or characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "eq":
		return fmt.Sprintf("%s must be %s", field, fe.Param())
	case "decimal_br":
		return field + " must be a decimal number with a comma separator"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// fieldPath drops the root struct name from the namespace, e.g.
// "Credentials.sender.zip" becomes "sender.zip".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
