package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/middleware"
	"travel-assistant/internal/model"
)

func (h *handler) processQueryReq(c *gin.Context) (queryReq, model.Scope, error) {
	var req queryReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return req, sc, errUnauthenticated
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, errInvalidBody
	}
	return req, sc, req.validate()
}

// processHistoryReq reads tripId from the query string, or from a JSON body on DELETE.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, model.Scope, error) {
	var req historyReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return req, sc, errUnauthenticated
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, errInvalidBody
	}
	if req.TripID == "" && c.Request.ContentLength != 0 && c.Request.Body != nil {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, sc, errInvalidBody
		}
	}
	return req, sc, nil
}
