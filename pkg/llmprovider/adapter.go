package llmprovider

import (
	"context"
	"strings"

	"travel-assistant/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface. It serves
// every OpenAI-compatible vendor (openai, deepseek, qwen, gemini) under the vendor's name.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter reporting itself as name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    make([]openai.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		oaReq.SystemInstruction = joinText(req.SystemInstruction)
	}
	for i, msg := range req.Messages {
		oaReq.Messages[i] = openai.Message{Role: msg.Role, Content: joinText(&msg)}
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage:        &Usage{InputTokens: resp.Usage.InputTokens, OutputTokens: resp.Usage.OutputTokens, TotalTokens: resp.Usage.TotalTokens},
	}
	if resp.Text != "" {
		out.Content.Parts = []Part{{Text: resp.Text}}
	}
	return out, nil
}

// Name returns the vendor name
func (a *OpenAIAdapter) Name() string { return a.name }

// Model returns the model name
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

func joinText(msg *Message) string {
	texts := make([]string, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}
