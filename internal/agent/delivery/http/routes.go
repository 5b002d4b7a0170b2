package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/middleware"
)

// RegisterRoutes maps the agent endpoints under rg. Every route requires a caller identity.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		g.POST("/query", h.Query)
		g.GET("/history", h.History)
		g.DELETE("/history", h.ClearHistory)
	}
}
