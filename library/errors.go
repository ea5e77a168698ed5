package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field  string // namespaced path, e.g. "Library.Books[2].Title"
	Rule   string // the violated rule, e.g. "required" or "pubyear"
	Reason string
}

// ValidationError reports every violated field of a failed construction.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Reason
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// wrapValidation converts validator errors into a ValidationError so callers
// see one error naming every bad field instead of the first one only.
func wrapValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:  fe.Namespace(),
			Rule:   fe.Tag(),
			Reason: reasonFor(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", fe.Namespace())
	case "pubyear":
		return fmt.Sprintf("%s: publication year %v out of range", fe.Namespace(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", fe.Namespace(), fe.Tag())
	}
}
