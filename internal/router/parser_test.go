package router

import (
	"testing"

	"travel-assistant/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantMatched   bool
		wantCategory  model.Category
		wantRationale string
	}{
		{
			name:          "canonical transcript",
			raw:           "代理编号: 1\n理由: 用户希望规划北京五天的行程",
			wantMatched:   true,
			wantCategory:  model.CategoryTripPlanning,
			wantRationale: "用户希望规划北京五天的行程",
		},
		{
			name:          "full-width digit and colon",
			raw:           "代理编号：３\n理由：询问酒店",
			wantMatched:   true,
			wantCategory:  model.CategoryAccommodation,
			wantRationale: "询问酒店",
		},
		{
			name:          "missing rationale still matches",
			raw:           "代理编号: 2",
			wantMatched:   true,
			wantCategory:  model.CategoryTransport,
			wantRationale: RationaleNotProvided,
		},
		{
			name:          "numbered list line",
			raw:           "5. 美食与活动助手\n原因: 用户想吃火锅",
			wantMatched:   true,
			wantCategory:  model.CategoryFoodActivity,
			wantRationale: "用户想吃火锅",
		},
		{
			name:          "english labels",
			raw:           "Category: 4\nReason: translation request",
			wantMatched:   true,
			wantCategory:  model.CategoryTranslation,
			wantRationale: "translation request",
		},
		{
			name:          "label with trailing description",
			raw:           "Agent 3 (住宿推荐代理)",
			wantMatched:   true,
			wantCategory:  model.CategoryAccommodation,
			wantRationale: RationaleNotProvided,
		},
		{
			name:         "label without token ignores digits in rationale",
			raw:          "代理编号: 无\n理由: 用户询问3月份的天气",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "digit inside prose",
			raw:          "I cannot determine this. The query mentions 2 cities.",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "echoed placeholder",
			raw:          "代理编号: <1-5>\n理由: <一句话说明原因>",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "token only in rationale",
			raw:          "理由: 选项 4 或 5 都可以",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "line starting with a date",
			raw:          "3月份去哪里比较好",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "no category token",
			raw:          "I cannot determine this.",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "out of range token",
			raw:          "代理编号: 7",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "digit inside longer number",
			raw:          "预算 2000 元",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
		{
			name:         "empty",
			raw:          "   ",
			wantMatched:  false,
			wantCategory: model.CategoryGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.Matched != tt.wantMatched {
				t.Fatalf("Matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", got.Category, tt.wantCategory)
			}
			if got.RawText != tt.raw {
				t.Errorf("RawText = %q, want %q", got.RawText, tt.raw)
			}
			if tt.wantMatched && got.Rationale != tt.wantRationale {
				t.Errorf("Rationale = %q, want %q", got.Rationale, tt.wantRationale)
			}
			if !tt.wantMatched && got.Rationale != RationaleNotProvided {
				t.Errorf("unmatched Rationale = %q", got.Rationale)
			}
		})
	}
}
