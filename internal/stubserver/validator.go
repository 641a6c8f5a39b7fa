package stubserver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to echo's Validator
// interface. Failures collapse into one flat string so the error
// envelope stays a single message.
type echoValidator struct {
	v *validator.Validate
}

func newValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = constraintMessage(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

// constraintMessage covers the tags the request schemas use: required
// fields, email, credential lengths, the 1..5 rating bounds and the
// positive-amount checks on prices.
func constraintMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "missing " + field
	case "email":
		return field + " is not a valid email address"
	case "min", "max":
		if fe.Kind() == reflect.String {
			word := "at least"
			if fe.Tag() == "max" {
				word = "at most"
			}
			return fmt.Sprintf("%s must have %s %s characters", field, word, fe.Param())
		}
		return fmt.Sprintf("%s out of range (%s %s)", field, fe.Tag(), fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return field + " must be positive"
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s violates %s", field, fe.Tag())
	}
}
