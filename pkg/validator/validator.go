package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report errors under the json field name, matching the wire format
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

// ValidateStruct returns field-level messages keyed by json field name, or
// nil when the struct is valid.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		fields[fieldErr.Field()] = message(fieldErr)
	}
	return fields
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on %s", err.Tag())
	}
}
