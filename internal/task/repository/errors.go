package repository

import "errors"

// ErrNotFound is returned when no task matches the given ID.
var ErrNotFound = errors.New("task not found")
