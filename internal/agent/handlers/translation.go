package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
)

var numberedLineRe = regexp.MustCompile(`^[\s*#>-]*([123])\s*[.．、)）]\s*(.*)$`)

// ConversationTranslation is the parsed answer of a conversation translation.
// Lines the model omitted are empty.
type ConversationTranslation struct {
	Translation          string
	Suggestion           string
	SuggestionTranslated string
}

// Translation translates text, or mediates a traveler's conversation.
type Translation struct {
	base
}

var _ agent.Handler = (*Translation)(nil)

func NewTranslation(d Deps, cfg Config) *Translation {
	return &Translation{base: newBase(d, cfg)}
}

func (h *Translation) Category() model.Category {
	return model.CategoryTranslation
}

// Operation selects the sub-operation for in.
func (h *Translation) Operation(in agent.Input) string {
	rule, _ := h.cfg.Rules.Translation.Evaluate(in)
	return rule.Value
}

func (h *Translation) Handle(ctx context.Context, in agent.Input) agent.AgentResponse {
	in = h.prepare(in)
	if h.Operation(in) == OperationConversation {
		resp, _ := h.conversation(ctx, in)
		return resp
	}
	return h.translate(ctx, in)
}

// TranslateText runs the text sub-operation directly.
func (h *Translation) TranslateText(ctx context.Context, in agent.Input) agent.AgentResponse {
	return h.translate(ctx, h.prepare(in))
}

// TranslateConversation runs the conversation sub-operation directly and
// also returns the parsed lines.
func (h *Translation) TranslateConversation(ctx context.Context, in agent.Input) (agent.AgentResponse, ConversationTranslation) {
	return h.conversation(ctx, h.prepare(in))
}

func (h *Translation) translate(ctx context.Context, in agent.Input) agent.AgentResponse {
	text := firstNonBlank(in.Value(KeyText), in.Query)
	if text == "" {
		return agent.Failed(ErrMsgNothingToSay)
	}

	prompt := fmt.Sprintf(PromptTranslate,
		firstNonBlank(in.Value(KeySourceLanguage), DefaultSourceLanguage),
		firstNonBlank(in.Value(KeyTargetLanguage), DefaultTargetLanguage),
		text,
	)
	out, err := h.generate(ctx, prompt, TemperatureTranslation)
	if err != nil {
		return h.fail(ctx, LogPrefixTranslate, ErrMsgTranslate, err)
	}
	return agent.Succeeded(out, nil)
}

func (h *Translation) conversation(ctx context.Context, in agent.Input) (agent.AgentResponse, ConversationTranslation) {
	speech := firstNonBlank(in.Value(KeyTravelerSpeech), in.Value(KeyText), in.Query)
	if speech == "" {
		return agent.Failed(ErrMsgNothingToSay), ConversationTranslation{}
	}

	prompt := fmt.Sprintf(PromptConversation,
		firstNonBlank(in.Value(KeyScenario), DefaultScenario),
		firstNonBlank(in.Value(KeyTravelerLanguage), in.Value(KeySourceLanguage), DefaultTravelerLanguage),
		speech,
		firstNonBlank(in.Value(KeyTargetLanguage), DefaultTargetLanguage),
	)
	raw, err := h.generate(ctx, prompt, TemperatureTranslation)
	if err != nil {
		return h.fail(ctx, LogPrefixConversation, ErrMsgConversation, err), ConversationTranslation{}
	}

	parsed := ParseConversation(raw)
	return agent.Succeeded(parsed.render(raw), nil), parsed
}

// ParseConversation extracts the three numbered lines from the model output.
// A short label before a colon ("翻译: ...") is dropped.
func ParseConversation(raw string) ConversationTranslation {
	var found [4]string
	for _, line := range strings.Split(raw, "\n") {
		m := numberedLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		idx := int(m[1][0] - '0')
		if found[idx] == "" {
			found[idx] = stripLabel(strings.TrimSpace(m[2]))
		}
	}
	return ConversationTranslation{
		Translation:          found[1],
		Suggestion:           found[2],
		SuggestionTranslated: found[3],
	}
}

func stripLabel(s string) string {
	i := strings.IndexAny(s, ":：")
	if i <= 0 {
		return s
	}
	if label := s[:i]; utf8.RuneCountInString(label) <= 12 && !strings.ContainsAny(label, "\"“「") {
		return strings.TrimSpace(strings.TrimLeft(s[i:], ":："))
	}
	return s
}

func (c ConversationTranslation) render(raw string) string {
	if c.Translation == "" && c.Suggestion == "" && c.SuggestionTranslated == "" {
		return strings.TrimSpace(raw)
	}
	return fmt.Sprintf("%s: %s\n%s: %s\n%s: %s",
		LabelTranslation, c.Translation,
		LabelSuggestion, c.Suggestion,
		LabelSuggestionReturn, c.SuggestionTranslated,
	)
}
