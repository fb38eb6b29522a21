// Package validation wraps go-playground/validator with field names taken
// from json/form tags and short human-readable messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/catalogadmin/console/internal/core/domain"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	return &Validator{v: v}
}

// Problems validates i and returns one message per failing field.
// A nil slice means i is valid.
func (val *Validator) Problems(i any) ([]string, error) {
	err := val.v.Struct(i)
	if err == nil {
		return nil, nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return msgs, nil
}

// Form validates a form or payload and returns a *domain.ValidationError
// tagged with the form when anything fails.
func (val *Validator) Form(form domain.Form, i any) error {
	problems, err := val.Problems(i)
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		return &domain.ValidationError{Form: form, Problems: problems}
	}
	return nil
}

// Valid reports whether i passes all of its validate tags.
func (val *Validator) Valid(i any) bool {
	return val.v.Struct(i) == nil
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "numeric":
		return field + " must be a number"
	case "number":
		return field + " must be a whole number"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
