// Package common contains sentinel errors shared across HabitKeep
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Service-level errors.
	ErrNotFound      = errors.New("not found")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrDuplicateName = errors.New("a habit with that name already exists")
)
