package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/provider"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// base carries what every handler shares. It holds no per-request state.
type base struct {
	llm llmprovider.TextGenerator
	l   log.Logger
	cfg Config
}

func newBase(d Deps, cfg Config) base {
	if d.LLM == nil {
		panic("agent/handlers: LLM is required")
	}
	if d.Logger == nil {
		d.Logger = log.NewNop()
	}
	return base{llm: d.LLM, l: d.Logger, cfg: cfg.withDefaults()}
}

// prepare returns a copy of in whose context is complemented by query hints.
func (b base) prepare(in agent.Input) agent.Input {
	in.Context = withHints(in.Context, extractHints(in.Query))
	return in
}

// generate calls the text generator under the generation timeout.
func (b base) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if b.cfg.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.GenerationTimeout)
		defer cancel()
	}

	text, err := b.llm.GenerateText(ctx, prompt, temperature)
	if err != nil {
		return "", fmt.Errorf("%w: %w", agent.ErrGenerationFailure, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", agent.ErrGenerationFailure)
	}
	return strings.TrimSpace(text), nil
}

// fetch runs an idempotent provider read under the provider timeout with a
// single bounded retry.
func fetch[T any](ctx context.Context, b base, fn func(context.Context) (T, error)) (T, error) {
	res, err := provider.Retry(ctx, b.cfg.RetryBackoff, func(ctx context.Context) (T, error) {
		if b.cfg.ProviderTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, b.cfg.ProviderTimeout)
			defer cancel()
		}
		return fn(ctx)
	})
	if err != nil {
		return res, fmt.Errorf("%w: %w", agent.ErrProviderUnavailable, err)
	}
	return res, nil
}

func (b base) fail(ctx context.Context, prefix, message string, err error) agent.AgentResponse {
	b.l.Warnf(ctx, "%s: %v", prefix, err)
	return agent.Failed(message)
}

// limit bounds a per-handler cap by the configured maximum.
func (b base) limit(n int) int {
	if b.cfg.MaxOptions > 0 && b.cfg.MaxOptions < n {
		return b.cfg.MaxOptions
	}
	return n
}

// date parses the first parseable value among keys; zero when none.
func (b base) date(in agent.Input, keys ...string) time.Time {
	for _, k := range keys {
		v := in.Value(k)
		if v == "" {
			continue
		}
		if t, err := b.cfg.Dates.Parse(v, b.cfg.Now()); err == nil {
			return t
		}
	}
	return time.Time{}
}

// days returns the explicit duration, or the calendar days between the
// first resolvable start and end dates. Empty when unknown.
func (b base) days(in agent.Input, startKeys, endKeys []string) string {
	if d := in.Value(KeyDuration); d != "" {
		return d
	}
	if n := b.cfg.Dates.CalendarDays(b.date(in, startKeys...), b.date(in, endKeys...)); n > 0 {
		return strconv.Itoa(n)
	}
	return ""
}

func (b base) formatDate(t time.Time, fallback string) string {
	if t.IsZero() {
		return orUnspecified(fallback)
	}
	return b.cfg.Dates.Format(t)
}

func truncate[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func toJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil || string(raw) == "null" || string(raw) == "[]" {
		return "暂无"
	}
	return string(raw)
}

// contextBlock renders non-blank context entries as sorted "key: value" lines.
func contextBlock(ctx map[string]string) string {
	keys := make([]string, 0, len(ctx))
	for k, v := range ctx {
		if strings.TrimSpace(v) != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(PromptContextHeader)
	for _, k := range keys {
		fmt.Fprintf(&sb, "- %s: %s\n", k, strings.TrimSpace(ctx[k]))
	}
	sb.WriteString("\n")
	return sb.String()
}
