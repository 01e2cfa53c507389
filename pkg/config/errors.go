package config

import (
	"fmt"
	"strings"
)

// TypeError reports a raw value that cannot be coerced to the declared
// type of a field. Non-literal numeric expressions (e.g. "2. / 3.") are
// never evaluated and surface as a TypeError on the affected field.
type TypeError struct {
	Field    string
	Expected string
	Actual   interface{}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %v (%T)", e.Field, e.Expected, e.Actual, e.Actual)
}

// RangeError reports a numeric value outside its physical domain.
type RangeError struct {
	Field      string
	Value      interface{}
	Constraint string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %v violates constraint %s", e.Field, e.Value, e.Constraint)
}

// EnumError reports a string value that is not in the allowed set.
type EnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: %q is not one of {%s}", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// MissingFieldError reports a field that is required because its region
// appears in the scenario but was not provided and has no default.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field is missing and has no default", e.Field)
}

// Warning is a non-fatal validation finding. Warnings never prevent a
// Config from being returned.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}
