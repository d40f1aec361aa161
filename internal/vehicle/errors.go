package vehicle

import (
	"fmt"
	"strings"
)

// ValidationError reports a rejected input at a construction or mutation
// boundary. Field names the offending attribute, Value carries the rejected
// input and Choices, when set, lists the accepted values.
type ValidationError struct {
	Field   string
	Value   interface{}
	Choices []string
}

func (e *ValidationError) Error() string {
	if len(e.Choices) > 0 {
		return fmt.Sprintf("invalid %s %v: choose from %s", e.Field, e.Value, strings.Join(e.Choices, ", "))
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

func newValidationError(field string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Value: value}
}

func newChoiceError(field string, value interface{}, choices []string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Choices: choices}
}
