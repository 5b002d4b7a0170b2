package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// Query godoc
// @Summary     Ask the travel assistant
// @Description Classifies the query, dispatches it to the matching agent and records the turn.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Caller id set by the gateway"
// @Param       body      body   queryReq true "Query, optional tripId and context"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Empty query"
// @Failure     401 {object} response.Resp "Missing caller identity"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processQueryReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	env, err := h.uc.HandleQuery(ctx, req.toInput(sc))
	if err != nil {
		h.l.Warnf(ctx, "uc.HandleQuery: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newQueryResp(env))
}

// History godoc
// @Summary     Conversation history
// @Description Lists the caller's turns in timestamp order, optionally for one trip.
// @Tags        Agent
// @Produce     json
// @Param       X-User-ID header string true  "Caller id set by the gateway"
// @Param       tripId    query  string false "Trip id"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Missing caller identity"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processHistoryReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	turns, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(turns))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Deletes the caller's turns, optionally only those of one trip.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true  "Caller id set by the gateway"
// @Param       tripId    query  string     false "Trip id"
// @Param       body      body   historyReq false "Trip id (alternative to the query parameter)"
// @Success     200 {object} clearResp
// @Failure     401 {object} response.Resp "Missing caller identity"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processHistoryReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	n, err := h.uc.ClearHistory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, clearResp{Deleted: n})
}
