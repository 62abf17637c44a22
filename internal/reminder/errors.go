package reminder

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNoDueDate    = errors.New("task has no due date to remind about")
)
