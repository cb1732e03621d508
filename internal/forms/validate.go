package forms

import (
	"fmt"
	"strings"
)

// Validate checks a form before it is persisted. Rules are evaluated in
// order and the first violation wins; errors name the offending field.
func Validate(title string, fields []FormField) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Message: "Please enter a form title"}
	}
	for _, field := range fields {
		if strings.TrimSpace(field.Label) == "" {
			return &ValidationError{Message: "All fields must have a label"}
		}
	}
	for _, field := range fields {
		if IsChoiceType(field.Type) && len(field.Options) == 0 {
			return &ValidationError{Message: fmt.Sprintf("%s needs at least one option", field.Label)}
		}
	}
	return nil
}
