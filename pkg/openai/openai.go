package openai

import (
	"context"
	"fmt"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

func newOpenAIImpl(cfg Config) *openAIImpl {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(cfg.HTTPClient),
		// retries are owned by llmprovider.Manager
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIImpl{
		client: sdk.NewClient(opts...),
		model:  cfg.Model,
	}
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// GenerateContent sends a chat completion request
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]sdk.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, sdk.SystemMessage(req.SystemInstruction))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case "assistant":
			messages = append(messages, sdk.AssistantMessage(m.Content))
		default:
			messages = append(messages, sdk.UserMessage(m.Content))
		}
	}

	params := sdk.ChatCompletionNewParams{
		Messages:    messages,
		Model:       sdk.ChatModel(o.model),
		Temperature: sdk.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = sdk.Int(int64(req.MaxTokens))
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion failed: %w", err)
	}

	resp := &Response{
		Model: completion.Model,
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}
	if len(completion.Choices) > 0 {
		resp.Text = completion.Choices[0].Message.Content
	}
	return resp, nil
}
