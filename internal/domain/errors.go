package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// TaskNotFound reports a missing task, keeping the exact id in the message.
// It wraps ErrNotFound so callers can match it with errors.Is.
func TaskNotFound(id string) error {
	return fmt.Errorf("task with ID %q %w", id, ErrNotFound)
}
