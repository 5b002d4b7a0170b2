package router

import (
	"context"
	"time"

	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// Router classifies a query into a Category. Classify never fails:
// model or parsing errors surface as Matched=false.
type Router interface {
	Classify(ctx context.Context, query string, queryContext map[string]string) ClassificationResult
}

// SemanticRouter classifies user intent using an LLM
type SemanticRouter struct {
	llm     llmprovider.TextGenerator
	l       log.Logger
	timeout time.Duration
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. A zero timeout leaves the caller's deadline in charge.
func New(llm llmprovider.TextGenerator, l log.Logger, timeout time.Duration) *SemanticRouter {
	return &SemanticRouter{
		llm:     llm,
		l:       l,
		timeout: timeout,
	}
}
