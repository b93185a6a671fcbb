package services

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"mrtravel/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const msgMissingFields = "Missing required fields"

// validateStruct runs the struct tags and folds the result into a single
// domain.ValidationError. Any missing required field wins over other rules.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.InternalError{Msg: "validation failed", Err: err}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return domain.ValidationError{Msg: msgMissingFields, Err: err}
		}
	}
	fe := fieldErrs[0]
	return domain.ValidationError{Field: lowerFirst(fe.Field()), Msg: "must be " + fe.Tag() + " " + fe.Param(), Err: err}
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

func trimAll(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}
