package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/task"
	"smart-todo/pkg/response"
)

var errInvalidDueDate = errors.New("due_date must be an RFC 3339 timestamp")

// respondError translates domain errors into HTTP responses. Unknown
// errors become an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrEmptyTitle):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
