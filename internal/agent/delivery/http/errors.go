package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/agent"
	"travel-assistant/pkg/response"
)

var (
	errUnauthenticated = errors.New("caller identity missing")
	errInvalidBody     = errors.New("invalid request body")
)

// writeError maps use-case errors to HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, agent.ErrEmptyQuery), errors.Is(err, agent.ErrMissingUser), errors.Is(err, errInvalidBody):
		response.Error(c, err, nil)
	case errors.Is(err, errUnauthenticated):
		response.Unauthorized(c)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded) && c.Request.Context().Err() != nil:
		response.ClientClosed(c)
	default:
		response.InternalError(c, err)
	}
}
