package apperror

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed profile payload. It is raised before
// anything is staged or executed, so nothing needs compensating.
type ValidationError struct {
	Field    string // payload field, e.g. "experience"
	Index    int    // record position, -1 when the whole field is wrong
	Subfield string // record attribute, empty when not applicable
	Reason   string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid field '%s'", e.Field)
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": item %d", e.Index)
		if e.Subfield != "" {
			fmt.Fprintf(&b, " has an error in '%s'", e.Subfield)
		}
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Invalid builds a field-level ValidationError.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Index: -1, Reason: reason}
}

// InvalidItem builds a ValidationError pointing at one record of a collection.
func InvalidItem(field string, index int, subfield, reason string) *ValidationError {
	return &ValidationError{Field: field, Index: index, Subfield: subfield, Reason: reason}
}

// StorageError wraps a blob store failure.
type StorageError struct {
	Op  string // "put" or "delete"
	Ref string
	Err error
}

func (e *StorageError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("storage %s %s: %v", e.Op, e.Ref, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TransactionError wraps the first relational failure of a batch.
// Statement is the zero-based batch position that failed, or -1 when the
// failure happened outside statement execution (acquire, begin, commit).
type TransactionError struct {
	Statement int
	Err       error
}

func (e *TransactionError) Error() string {
	if e.Statement >= 0 {
		return fmt.Sprintf("transaction failed at statement %d: %v", e.Statement, e.Err)
	}
	return fmt.Sprintf("transaction failed: %v", e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
