// Package schema validates server responses against the structural contract
// of each entity. Validation failures are a distinct error kind from
// transport failures so callers can tell "the server rejected us" apart
// from "the server returned a malformed payload".
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names, not Go identifiers
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldViolation names one field that failed its constraint.
type FieldViolation struct {
	Field      string
	Constraint string
}

func (f FieldViolation) String() string {
	return fmt.Sprintf("%s (%s)", f.Field, f.Constraint)
}

// ValidationError means a response body did not conform to the entity's
// contract. The whole call fails; elements are never partially accepted.
type ValidationError struct {
	Entity     string
	Index      int // element index for collection payloads, -1 otherwise
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	if e.Index >= 0 {
		return fmt.Sprintf("schema: %s[%d] invalid: %s", e.Entity, e.Index, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("schema: %s invalid: %s", e.Entity, strings.Join(parts, ", "))
}

// IsValidationError reports whether err is a schema-validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks a single entity against its declared contract.
func Validate(entity string, v any) error {
	if err := validate.Struct(v); err != nil {
		return toValidationError(entity, -1, err)
	}
	return nil
}

// ValidateSlice checks every element of a collection payload. Fail-closed:
// the first invalid element fails the whole call.
func ValidateSlice[T any](entity string, vs []T) error {
	for i := range vs {
		if err := validate.Struct(vs[i]); err != nil {
			return toValidationError(entity, i, err)
		}
	}
	return nil
}

func toValidationError(entity string, index int, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Entity: entity, Index: index, Violations: []FieldViolation{{Field: "_", Constraint: err.Error()}}}
	}
	out := &ValidationError{Entity: entity, Index: index}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, FieldViolation{Field: fe.Namespace(), Constraint: fe.Tag()})
	}
	return out
}
