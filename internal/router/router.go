package router

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Classify determines which handler should answer query.
func (r *SemanticRouter) Classify(ctx context.Context, query string, queryContext map[string]string) ClassificationResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	raw, err := r.llm.GenerateText(ctx, BuildPrompt(query, queryContext), ClassifyTemperature)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, MsgLLMCallFailed, err)
		return unmatched("")
	}

	result := Parse(raw)
	if !result.Matched {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, MsgUnmatched, raw)
		return result
	}

	r.l.Infof(ctx, "%s: classified as %s (%s)", LogPrefixClassify, result.Category, result.Rationale)
	return result
}

// BuildPrompt renders PromptClassify. Context keys are emitted in sorted order
// so the prompt is stable for a given input.
func BuildPrompt(query string, queryContext map[string]string) string {
	var block strings.Builder
	if len(queryContext) > 0 {
		keys := make([]string, 0, len(queryContext))
		for k, v := range queryContext {
			if strings.TrimSpace(v) != "" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			block.WriteString(PromptContextHeader)
			for _, k := range keys {
				fmt.Fprintf(&block, "- %s: %s\n", k, queryContext[k])
			}
			block.WriteString("\n")
		}
	}
	return fmt.Sprintf(PromptClassify, block.String(), query)
}
