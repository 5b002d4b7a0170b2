package handlers

import (
	"context"
	"fmt"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
)

// Generic answers anything the classifier could not route. Canned replies
// from the rule table take precedence over the model.
type Generic struct {
	base
}

var _ agent.Handler = (*Generic)(nil)

func NewGeneric(d Deps, cfg Config) *Generic {
	return &Generic{base: newBase(d, cfg)}
}

func (h *Generic) Category() model.Category {
	return model.CategoryGeneric
}

func (h *Generic) Handle(ctx context.Context, in agent.Input) agent.AgentResponse {
	if rule, ok := h.cfg.Rules.Generic.Evaluate(in); ok && rule.Value != "" {
		return agent.Succeeded(rule.Value, nil)
	}

	prompt := fmt.Sprintf(PromptGeneric, contextBlock(in.Context), in.Query)
	text, err := h.generate(ctx, prompt, TemperatureGeneric)
	if err != nil {
		return h.fail(ctx, LogPrefixGeneric, ErrMsgGeneric, err)
	}
	return agent.Succeeded(text, nil)
}
