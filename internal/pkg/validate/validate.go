package validate

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator. Field names in messages come
// from the `label` struct tag when present, so responses read "Rating must
// be at most 5." rather than leaking Go field names.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return val
}

// Messages validates the given struct against its validate tags and returns
// one human-readable message per violated constraint, or nil when valid.
func Messages(s interface{}) []string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s.", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s digits.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed '%s' validation.", fe.Field(), fe.Tag())
	}
}
