package http

import (
	"fmt"
	"strconv"
	"strings"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/response"
)

// --- Request DTOs ---

// queryReq accepts loosely typed context values; they are flattened to strings.
type queryReq struct {
	Query   string         `json:"query"`
	TripID  string         `json:"tripId"`
	Context map[string]any `json:"context"`
}

func (r queryReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return agent.ErrEmptyQuery
	}
	return nil
}

func (r queryReq) toInput(sc model.Scope) agent.Query {
	ctx := make(map[string]string, len(r.Context))
	for k, v := range r.Context {
		if s := flatten(v); s != "" {
			ctx[k] = s
		}
	}
	return agent.Query{
		Text:    r.Query,
		UserID:  sc.UserID,
		TripID:  strings.TrimSpace(r.TripID),
		Context: ctx,
	}
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "、")
	default:
		return fmt.Sprint(t)
	}
}

type historyReq struct {
	TripID string `form:"tripId" json:"tripId"`
}

func (r historyReq) toInput() agent.HistoryInput {
	return agent.HistoryInput{TripID: strings.TrimSpace(r.TripID)}
}

// --- Response DTOs ---

type queryResp struct {
	Text       string                 `json:"text"`
	AgentUsed  string                 `json:"agentUsed"`
	Confidence float64                `json:"confidence"`
	Error      string                 `json:"error,omitempty"`
	Options    []agent.ExternalOption `json:"options,omitempty"`
}

func (h *handler) newQueryResp(env agent.Envelope) queryResp {
	return queryResp{
		Text:       env.Text,
		AgentUsed:  env.AgentUsed,
		Confidence: env.Confidence,
		Error:      env.Error,
		Options:    env.Options,
	}
}

type turnItem struct {
	Query     string            `json:"query"`
	Response  string            `json:"response"`
	AgentUsed string            `json:"agentUsed,omitempty"`
	TripID    string            `json:"tripId,omitempty"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	History []turnItem `json:"history"`
}

func (h *handler) newHistoryResp(turns []model.ConversationTurn) historyResp {
	items := make([]turnItem, 0, len(turns))
	for _, t := range turns {
		items = append(items, turnItem{
			Query:     t.Query,
			Response:  t.Response,
			AgentUsed: t.AgentUsed,
			TripID:    t.TripID,
			Timestamp: response.DateTime(t.Timestamp),
		})
	}
	return historyResp{History: items}
}

type clearResp struct {
	Deleted int64 `json:"deleted"`
}
