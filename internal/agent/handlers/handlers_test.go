package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/internal/provider"
)

func flightsN(n int) []provider.FlightOption {
	out := make([]provider.FlightOption, n)
	for i := range out {
		out[i] = provider.FlightOption{ID: fmt.Sprintf("F%d", i)}
	}
	return out
}

func hotelsN(n int) []provider.HotelOption {
	out := make([]provider.HotelOption, n)
	for i := range out {
		out[i] = provider.HotelOption{ID: fmt.Sprintf("H%d", i)}
	}
	return out
}

func TestTripPlanner(t *testing.T) {
	t.Run("plans from query hints", func(t *testing.T) {
		llm := &mockLLM{text: "第一天：故宫…"}
		h := NewTripPlanner(testDeps(llm, &mockProviders{}), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "请帮我规划北京五天的行程，预算5000", UserID: "u1"})
		if !resp.Success || resp.Text != "第一天：故宫…" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		for _, want := range []string{"目的地: 北京", "旅行时间: 5 天", "预算: 5000", "请帮我规划北京五天的行程"} {
			if !strings.Contains(llm.prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
		if llm.temperature != TemperatureTripPlanning {
			t.Errorf("temperature = %v", llm.temperature)
		}
		if len(resp.Options) != 0 {
			t.Errorf("trip planning should not return options")
		}
	})

	t.Run("duration from calendar dates", func(t *testing.T) {
		llm := &mockLLM{text: "ok"}
		h := NewTripPlanner(testDeps(llm, &mockProviders{}), testConfig())

		h.Handle(context.Background(), agent.Input{
			Query:   "帮我安排行程",
			Context: map[string]string{"destination": "成都", "startDate": "2025-05-01", "endDate": "2025-05-06"},
		})
		if !strings.Contains(llm.prompt, "旅行时间: 5 天") {
			t.Errorf("expected 5 calendar days in prompt:\n%s", llm.prompt)
		}
	})

	t.Run("context wins over hints", func(t *testing.T) {
		llm := &mockLLM{text: "ok"}
		h := NewTripPlanner(testDeps(llm, &mockProviders{}), testConfig())

		h.Handle(context.Background(), agent.Input{
			Query:   "去北京玩三天",
			Context: map[string]string{"destination": "上海"},
		})
		if !strings.Contains(llm.prompt, "目的地: 上海") {
			t.Errorf("caller context should win:\n%s", llm.prompt)
		}
	})

	t.Run("generation failure degrades", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("boom")}
		h := NewTripPlanner(testDeps(llm, &mockProviders{}), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "规划行程"})
		if resp.Success || resp.Error != ErrMsgTripPlanning {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("blank generation is a failure", func(t *testing.T) {
		h := NewTripPlanner(testDeps(&mockLLM{text: "  "}, &mockProviders{}), testConfig())
		if resp := h.Handle(context.Background(), agent.Input{Query: "规划行程"}); resp.Success {
			t.Error("expected failure for blank text")
		}
	})
}

func TestTransport(t *testing.T) {
	t.Run("flight provider failure with flight mode", func(t *testing.T) {
		llm := &mockLLM{text: "should not be used"}
		p := &mockProviders{flightsErr: provider.ErrUnavailable}
		h := NewTransport(testDeps(llm, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{
			Query:   "从上海到北京怎么走",
			Context: map[string]string{"preferredMode": "飞机"},
		})
		if resp.Success || resp.Error != ErrMsgTransport {
			t.Fatalf("expected degraded response, got %+v", resp)
		}
		if p.count("flights") != 2 {
			t.Errorf("expected one retry of the flight search, got %d calls", p.count("flights"))
		}
		if p.count("legs") != 0 {
			t.Error("ground transport should not be consulted for flight mode")
		}
		if llm.calls != 0 {
			t.Error("generation should not run after a provider failure")
		}
	})

	t.Run("any mode consults both and truncates", func(t *testing.T) {
		llm := &mockLLM{text: "方案"}
		p := &mockProviders{
			flights: flightsN(3),
			legs:    []provider.TransportLeg{{Mode: "火车"}, {Mode: "火车"}, {Mode: "飞机"}},
		}
		cfg := testConfig()
		cfg.MaxOptions = 2
		h := NewTransport(testDeps(llm, p), cfg)

		resp := h.Handle(context.Background(), agent.Input{
			Query:   "上海去杭州",
			Context: map[string]string{"departureDate": "2025-05-01", "returnDate": "2025-05-04"},
		})
		if !resp.Success {
			t.Fatalf("unexpected failure: %+v", resp)
		}
		if len(resp.Options) != 4 {
			t.Fatalf("expected 2 flights + 2 legs, got %d options", len(resp.Options))
		}
		if resp.Options[0].Kind != agent.OptionFlight || resp.Options[3].Kind != agent.OptionTransportLeg {
			t.Errorf("unexpected option order: %s ... %s", resp.Options[0].Kind, resp.Options[3].Kind)
		}
		if !strings.Contains(llm.prompt, "起点: 上海") || !strings.Contains(llm.prompt, "终点: 杭州") {
			t.Errorf("prompt missing cities:\n%s", llm.prompt)
		}
		if !strings.Contains(llm.prompt, "行程天数: 3") {
			t.Errorf("prompt missing calendar day count:\n%s", llm.prompt)
		}
		if p.flightOpt.Date.Day() != 1 {
			t.Errorf("flight search date = %v", p.flightOpt.Date)
		}
		if llm.temperature != TemperatureTransport {
			t.Errorf("temperature = %v", llm.temperature)
		}
	})

	t.Run("ground mode skips flights", func(t *testing.T) {
		p := &mockProviders{legs: []provider.TransportLeg{{Mode: "火车"}}}
		h := NewTransport(testDeps(&mockLLM{text: "ok"}, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "从北京坐高铁去西安"})
		if !resp.Success || p.count("flights") != 0 || p.count("legs") != 1 {
			t.Errorf("unexpected calls: %v, resp %+v", p.calls, resp)
		}
	})

	t.Run("unknown cities skip providers", func(t *testing.T) {
		p := &mockProviders{}
		h := NewTransport(testDeps(&mockLLM{text: "ok"}, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "怎么去机场"})
		if !resp.Success || len(p.calls) != 0 {
			t.Errorf("expected pure synthesis, calls %v", p.calls)
		}
	})
}

func TestTransportMode(t *testing.T) {
	h := NewTransport(testDeps(&mockLLM{}, &mockProviders{}), testConfig())

	tests := []struct {
		name string
		in   agent.Input
		want TravelMode
	}{
		{"preferred flight", agent.Input{Context: map[string]string{"preferredMode": "飞机"}}, ModeFlight},
		{"preferred english flight", agent.Input{Context: map[string]string{"preferredMode": "Flight"}}, ModeFlight},
		{"preferred train", agent.Input{Context: map[string]string{"preferredMode": "火车"}, Query: "机票贵吗"}, ModeGround},
		{"query mentions plane", agent.Input{Query: "坐飞机去北京"}, ModeFlight},
		{"query mentions rail", agent.Input{Query: "高铁票"}, ModeGround},
		{"unset", agent.Input{Query: "上海到北京"}, ModeAny},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Mode(tt.in); got != tt.want {
				t.Errorf("Mode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAccommodation(t *testing.T) {
	t.Run("filters by type and truncates", func(t *testing.T) {
		llm := &mockLLM{text: "推荐豪华大酒店"}
		p := &mockProviders{hotels: hotelsN(12)}
		h := NewAccommodation(testDeps(llm, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{
			Query:   "北京有什么好的民宿",
			Context: map[string]string{"checkIn": "2025-05-01", "checkOut": "2025-05-03", "guests": "2"},
		})
		if !resp.Success {
			t.Fatalf("unexpected failure: %+v", resp)
		}
		if len(resp.Options) != MaxHotelOptions {
			t.Errorf("expected %d options, got %d", MaxHotelOptions, len(resp.Options))
		}
		if resp.Options[0].Kind != agent.OptionHotel || resp.Options[0].Hotel.ID != "H0" {
			t.Errorf("unexpected first option: %+v", resp.Options[0])
		}
		if p.hotelOpts.Type != "民宿" || p.hotelOpts.Destination != "北京" || p.hotelOpts.Guests != 2 {
			t.Errorf("unexpected search options: %+v", p.hotelOpts)
		}
		if !strings.Contains(llm.prompt, "入住日期: 2025-05-01") || !strings.Contains(llm.prompt, "住宿类型偏好: 民宿") {
			t.Errorf("prompt missing fields:\n%s", llm.prompt)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		p := &mockProviders{hotelsErr: provider.ErrUnavailable}
		h := NewAccommodation(testDeps(&mockLLM{text: "x"}, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "上海酒店推荐"})
		if resp.Success || resp.Error != ErrMsgAccommodation {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("generation failure", func(t *testing.T) {
		p := &mockProviders{hotels: hotelsN(1)}
		h := NewAccommodation(testDeps(&mockLLM{err: errors.New("down")}, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "上海酒店推荐"})
		if resp.Success || resp.Error != ErrMsgAccommodation || len(resp.Options) != 0 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}

func TestFoodActivity(t *testing.T) {
	t.Run("restaurants truncated to eight", func(t *testing.T) {
		rs := make([]provider.RestaurantOption, 12)
		p := &mockProviders{restaurants: rs}
		llm := &mockLLM{text: "推荐火锅"}
		h := NewFoodActivity(testDeps(llm, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "成都有什么好吃的"})
		if !resp.Success || len(resp.Options) != MaxRestaurantOptions {
			t.Fatalf("unexpected response: success=%v options=%d", resp.Success, len(resp.Options))
		}
		if resp.Options[0].Kind != agent.OptionRestaurant {
			t.Errorf("kind = %s", resp.Options[0].Kind)
		}
		if p.count("weather") != 0 {
			t.Error("restaurants should not fetch weather")
		}
		if !strings.Contains(llm.prompt, "美食顾问") {
			t.Error("expected the restaurant prompt")
		}
	})

	t.Run("activities fold weather", func(t *testing.T) {
		p := &mockProviders{
			activities: make([]provider.ActivityOption, 3),
			weather:    provider.WeatherSnapshot{Location: "三亚", Condition: "晴朗", Temperature: 30},
		}
		llm := &mockLLM{text: "去海边"}
		h := NewFoodActivity(testDeps(llm, p), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "三亚有什么好玩的景点"})
		if !resp.Success || len(resp.Options) != 3 || resp.Options[0].Kind != agent.OptionActivity {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if p.count("weather") != 1 || p.count("activities") != 1 {
			t.Errorf("unexpected calls: %v", p.calls)
		}
		if !strings.Contains(llm.prompt, "晴朗") || !strings.Contains(llm.prompt, "日期: 2025-05-01") {
			t.Errorf("prompt missing weather or date:\n%s", llm.prompt)
		}
	})

	t.Run("weather failure degrades activities", func(t *testing.T) {
		p := &mockProviders{weatherErr: provider.ErrUnavailable}
		h := NewFoodActivity(testDeps(&mockLLM{text: "x"}, p), testConfig())

		resp := h.ActivityRecommendations(context.Background(), agent.Input{Query: "西安景点"})
		if resp.Success || resp.Error != ErrMsgActivities {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("restaurant failure", func(t *testing.T) {
		p := &mockProviders{placesErr: provider.ErrUnavailable}
		h := NewFoodActivity(testDeps(&mockLLM{text: "x"}, p), testConfig())

		resp := h.RestaurantRecommendations(context.Background(), agent.Input{Query: "北京餐厅"})
		if resp.Success || resp.Error != ErrMsgRestaurants {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}

func TestTranslation(t *testing.T) {
	t.Run("text translation", func(t *testing.T) {
		llm := &mockLLM{text: "Where is the train station?"}
		h := NewTranslation(testDeps(llm, &mockProviders{}), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "把“火车站在哪里”翻译成英语"})
		if !resp.Success || resp.Text != "Where is the train station?" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if !strings.Contains(llm.prompt, "文本: 火车站在哪里") || !strings.Contains(llm.prompt, "翻译成英语") {
			t.Errorf("unexpected prompt:\n%s", llm.prompt)
		}
		if llm.temperature != TemperatureTranslation {
			t.Errorf("temperature = %v", llm.temperature)
		}
	})

	t.Run("conversation translation", func(t *testing.T) {
		llm := &mockLLM{text: "1. すみません、駅はどこですか？\n2. 駅はこの先です。\n3. 车站就在前面。"}
		h := NewTranslation(testDeps(llm, &mockProviders{}), testConfig())

		resp, parsed := h.TranslateConversation(context.Background(), agent.Input{
			Context: map[string]string{"travelerSpeech": "请问车站在哪里？", "targetLanguage": "日语", "scenario": "问路"},
		})
		if !resp.Success {
			t.Fatalf("unexpected failure: %+v", resp)
		}
		if parsed.Translation != "すみません、駅はどこですか？" || parsed.SuggestionTranslated != "车站就在前面。" {
			t.Errorf("unexpected parse: %+v", parsed)
		}
		if !strings.HasPrefix(resp.Text, LabelTranslation+": ") {
			t.Errorf("unexpected text: %q", resp.Text)
		}
	})

	t.Run("conversation failure", func(t *testing.T) {
		h := NewTranslation(testDeps(&mockLLM{err: errors.New("x")}, &mockProviders{}), testConfig())
		resp := h.Handle(context.Background(), agent.Input{Query: "对方说了一句话我该怎么回答", Context: map[string]string{"operation": "conversation"}})
		if resp.Success || resp.Error != ErrMsgConversation {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("text failure", func(t *testing.T) {
		h := NewTranslation(testDeps(&mockLLM{err: errors.New("x")}, &mockProviders{}), testConfig())
		resp := h.TranslateText(context.Background(), agent.Input{Query: "翻译：谢谢"})
		if resp.Success || resp.Error != ErrMsgTranslate {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}

func TestParseConversation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ConversationTranslation
	}{
		{
			name: "three numbered lines",
			raw:  "1. Hello\n2. Hi, how can I help?\n3. 你好，有什么可以帮您？",
			want: ConversationTranslation{"Hello", "Hi, how can I help?", "你好，有什么可以帮您？"},
		},
		{
			name: "labels and markdown",
			raw:  "以下是结果：\n**1.** 翻译: Hello\n- 2、建议回应：Hi!\n3) 回应翻译：嗨！",
			want: ConversationTranslation{"Hello", "Hi!", "嗨！"},
		},
		{
			name: "missing third line",
			raw:  "1. Hello\n2. Hi",
			want: ConversationTranslation{"Hello", "Hi", ""},
		},
		{
			name: "no numbered lines",
			raw:  "Sorry, I cannot help with that.",
			want: ConversationTranslation{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseConversation(tt.raw); got != tt.want {
				t.Errorf("ParseConversation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeneric(t *testing.T) {
	t.Run("greeting is canned", func(t *testing.T) {
		llm := &mockLLM{text: "model"}
		h := NewGeneric(testDeps(llm, &mockProviders{}), testConfig())

		resp := h.Handle(context.Background(), agent.Input{Query: "你好！"})
		if !resp.Success || resp.Text != ReplyGreeting || llm.calls != 0 {
			t.Errorf("expected canned greeting, got %+v (calls %d)", resp, llm.calls)
		}
	})

	t.Run("catch-all delegates to the model", func(t *testing.T) {
		llm := &mockLLM{text: "I cannot determine this."}
		h := NewGeneric(testDeps(llm, &mockProviders{}), testConfig())

		resp := h.Handle(context.Background(), agent.Input{
			Query:   "你好，明天天气怎么样",
			Context: map[string]string{"tripSummary": "北京 5 天"},
		})
		if !resp.Success || resp.Text != "I cannot determine this." || len(resp.Options) != 0 {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if !strings.Contains(llm.prompt, "- tripSummary: 北京 5 天") {
			t.Errorf("prompt missing context:\n%s", llm.prompt)
		}
	})

	t.Run("failure", func(t *testing.T) {
		h := NewGeneric(testDeps(&mockLLM{err: errors.New("x")}, &mockProviders{}), testConfig())
		resp := h.Handle(context.Background(), agent.Input{Query: "随便聊聊"})
		if resp.Success || resp.Error != ErrMsgGeneric {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}

func TestNewAll(t *testing.T) {
	registry := agent.NewRegistry(NewAll(testDeps(&mockLLM{}, &mockProviders{}), testConfig())...)
	if !registry.Complete() {
		t.Fatal("expected a handler for every category")
	}
	if h, _ := registry.Get(model.CategoryFoodActivity); h.Category() != model.CategoryFoodActivity {
		t.Error("FoodActivity handler mismatch")
	}
}

func TestTimeoutsDegrade(t *testing.T) {
	t.Run("hanging hotel provider", func(t *testing.T) {
		cfg := testConfig()
		cfg.ProviderTimeout = 20 * time.Millisecond
		llm := &mockLLM{text: "x"}
		d := testDeps(llm, &mockProviders{})
		d.Hotels = hangingHotels{}
		h := NewAccommodation(d, cfg)

		start := time.Now()
		resp := h.Handle(context.Background(), agent.Input{Query: "上海酒店推荐"})
		if resp.Success || resp.Error != ErrMsgAccommodation {
			t.Errorf("unexpected response: %+v", resp)
		}
		if llm.calls != 0 {
			t.Errorf("expected no generation after provider timeout, got %d calls", llm.calls)
		}
		// One attempt plus one retry, each bounded by the provider timeout.
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("handler took %v", elapsed)
		}
	})

	t.Run("hanging generator", func(t *testing.T) {
		cfg := testConfig()
		cfg.GenerationTimeout = 20 * time.Millisecond
		d := testDeps(nil, &mockProviders{})
		d.LLM = hangingLLM{}
		h := NewGeneric(d, cfg)

		start := time.Now()
		resp := h.Handle(context.Background(), agent.Input{Query: "随便聊聊"})
		if resp.Success || resp.Error != ErrMsgGeneric {
			t.Errorf("unexpected response: %+v", resp)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("handler took %v", elapsed)
		}
	})
}

func TestCancelledContextDegrades(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	llm := &mockLLM{err: context.Canceled}
	h := NewTripPlanner(testDeps(llm, &mockProviders{}), testConfig())
	if resp := h.Handle(ctx, agent.Input{Query: "规划行程"}); resp.Success {
		t.Error("expected failure on cancelled context")
	}
}
