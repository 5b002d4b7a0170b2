package middleware

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/model"
)

// SetScope stores the caller identity on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the caller identity set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.UserID != ""
}
