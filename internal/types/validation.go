package types

import (
	"fmt"
	"strings"
)

// ValidationError reports a user-supplied required field that is missing
// or unusable before a create/update is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// Validate checks the required customer fields.
func (f CustomerForm) Validate() error {
	if strings.TrimSpace(f.Firstname) == "" {
		return &ValidationError{Field: "firstname", Reason: "is required"}
	}
	if strings.TrimSpace(f.Lastname) == "" {
		return &ValidationError{Field: "lastname", Reason: "is required"}
	}
	return nil
}

// Validate checks the required training fields.
func (f TrainingForm) Validate() error {
	if strings.TrimSpace(f.Date) == "" {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if strings.TrimSpace(f.Activity) == "" {
		return &ValidationError{Field: "activity", Reason: "is required"}
	}
	if strings.TrimSpace(f.Customer) == "" {
		return &ValidationError{Field: "customer", Reason: "is required"}
	}
	return nil
}
