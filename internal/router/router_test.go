package router

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel-assistant/internal/model"
)

type mockGenerator struct {
	text        string
	err         error
	prompt      string
	temperature float64
	hadDeadline bool
}

func (m *mockGenerator) GenerateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.prompt = prompt
	m.temperature = temperature
	_, m.hadDeadline = ctx.Deadline()
	return m.text, m.err
}

type mockLogger struct{ warns int }

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    { m.warns++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  { m.warns++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func TestClassify(t *testing.T) {
	t.Run("matched", func(t *testing.T) {
		gen := &mockGenerator{text: "代理编号: 1\n理由: 行程规划"}
		r := New(gen, &mockLogger{}, time.Second)

		got := r.Classify(context.Background(), "请帮我规划北京五天的行程，预算5000", nil)
		if !got.Matched || got.Category != model.CategoryTripPlanning {
			t.Fatalf("unexpected result: %+v", got)
		}
		if gen.temperature != ClassifyTemperature {
			t.Errorf("temperature = %v, want %v", gen.temperature, ClassifyTemperature)
		}
		if !gen.hadDeadline {
			t.Error("expected classification call to carry a deadline")
		}
		if !strings.Contains(gen.prompt, "请帮我规划北京五天的行程，预算5000") {
			t.Error("prompt missing user query")
		}
	})

	t.Run("generator failure degrades to Generic", func(t *testing.T) {
		logger := &mockLogger{}
		r := New(&mockGenerator{err: errors.New("provider down")}, logger, 0)

		got := r.Classify(context.Background(), "hello", nil)
		if got.Matched || got.Category != model.CategoryGeneric {
			t.Fatalf("expected unmatched Generic, got %+v", got)
		}
		if logger.warns != 1 {
			t.Errorf("expected 1 warning, got %d", logger.warns)
		}
	})

	t.Run("unparseable output degrades to Generic", func(t *testing.T) {
		r := New(&mockGenerator{text: "I cannot determine this."}, &mockLogger{}, 0)

		got := r.Classify(context.Background(), "hmm", nil)
		if got.Matched || got.Category != model.CategoryGeneric {
			t.Fatalf("expected unmatched Generic, got %+v", got)
		}
		if got.RawText != "I cannot determine this." {
			t.Errorf("RawText = %q", got.RawText)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("上海有什么好吃的", map[string]string{
		"destination": "上海",
		"budget":      "",
		"duration":    "3",
	})

	if !strings.Contains(prompt, PromptContextHeader) {
		t.Error("expected context header")
	}
	if strings.Contains(prompt, "budget") {
		t.Error("blank context values should be skipped")
	}
	if strings.Index(prompt, "destination") > strings.Index(prompt, "duration") {
		t.Error("context keys should be sorted")
	}
	if !strings.Contains(BuildPrompt("hi", nil), "用户问题: hi") {
		t.Error("prompt without context should still contain the query")
	}
	if strings.Contains(BuildPrompt("hi", nil), PromptContextHeader) {
		t.Error("empty context should not render a header")
	}
}
