package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/response"
)

// Auth trusts the user id the gateway put in X-User-ID. Requests without one are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			m.l.Debugf(c.Request.Context(), "%s: missing %s", LogPrefixAuth, HeaderUserID)
			response.Unauthorized(c)
			return
		}

		SetScope(c, model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		})
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}
