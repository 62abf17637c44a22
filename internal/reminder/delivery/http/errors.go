package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/reminder"
	"smart-todo/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reminder.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, reminder.ErrNoDueDate):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
