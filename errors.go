package statemachine

import "fmt"

// DefinitionError reports a structural problem in a declarative schema
// definition. The runtime path raises no errors at all: an undefined
// transition and a reclaimed subject are both silent no-ops.
type DefinitionError struct {
	Field  string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("schema definition error [%s]: %s", e.Field, e.Reason)
}

// NewDefinitionError creates a new definition error.
func NewDefinitionError(field, reason string) *DefinitionError {
	return &DefinitionError{Field: field, Reason: reason}
}
