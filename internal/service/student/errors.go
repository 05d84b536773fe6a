package student

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The concrete types below carry the detail that
// ends up in the response body.
var (
	ErrNotFound       = errors.New("student not found")
	ErrDuplicateEmail = errors.New("student email already exists")
)

// NotFoundError reports a lookup by id or by email that matched nothing.
type NotFoundError struct {
	ID    int64
	Email string
}

func (e *NotFoundError) Error() string {
	if e.Email != "" {
		return fmt.Sprintf("Student not found with email: %s", e.Email)
	}
	return fmt.Sprintf("Student not found with ID: %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateEmailError reports a create or update whose email is held by
// another student.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("Email already exists: %s", e.Email)
}

func (e *DuplicateEmailError) Is(target error) bool { return target == ErrDuplicateEmail }
