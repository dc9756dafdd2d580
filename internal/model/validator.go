package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v against its struct tags.
func Validate(v any) error {
	return validate.Struct(v)
}

// ValidateVar checks a single value against a tag expression.
func ValidateVar(v any, tag string) error {
	return validate.Var(v, tag)
}

// ValidationError turns validator.ValidationErrors into a readable message.
func ValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var errorMsgs []string
	for _, e := range validationErrors {
		field := e.Namespace()
		if field == "" {
			field = e.Field()
		}
		switch e.Tag() {
		case "required":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' is required", field))
		case "unique":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must not contain duplicate %s values", field, e.Param()))
		case "gte":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must be greater than or equal to %s", field, e.Param()))
		case "max":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must be at most %s characters", field, e.Param()))
		default:
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag()))
		}
	}

	return strings.Join(errorMsgs, ", ")
}
