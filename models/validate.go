package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}()

// FieldError names one field that failed a rule
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError lists every field that failed validation. Its message is
// meant to be shown to the user as is.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e {
		parts = append(parts, f.Field+" "+describeRule(f.Rule))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Fields returns the names of the failing fields
func (e ValidationError) Fields() []string {
	out := make([]string, 0, len(e))
	for _, f := range e {
		out = append(out, f.Field)
	}
	return out
}

func describeRule(rule string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "datetime":
		return "must be a date (YYYY-MM-DD)"
	case "gt", "min":
		return "is too small"
	case "max":
		return "is too large"
	case "oneof":
		return "has an unknown value"
	}
	return "is invalid (" + rule + ")"
}

type enumChecker interface {
	validateEnums() error
}

// Validate checks struct tags and enum fields of a model. It returns a
// ValidationError or nil.
func Validate(v any) error {
	var out ValidationError
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	if ec, ok := v.(enumChecker); ok {
		var enumErrs ValidationError
		if errors.As(ec.validateEnums(), &enumErrs) {
			out = append(out, enumErrs...)
		}
	}
	if len(out) > 0 {
		return out
	}
	return nil
}
