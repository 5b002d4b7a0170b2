package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/agent"
	"travel-assistant/pkg/log"
)

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc agent.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the agent domain.
func New(l log.Logger, uc agent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
