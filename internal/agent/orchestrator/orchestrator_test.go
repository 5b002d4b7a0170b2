package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/agent/handlers"
	"travel-assistant/internal/model"
)

func TestHandleQuery_Unmatched(t *testing.T) {
	llm := &scriptedLLM{classify: "I cannot determine this.", reply: "我们可以聊聊您的旅行计划。"}
	f := newFixture(t, llm)

	env, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "今天心情不错", UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.AgentUsed != "Generic" {
		t.Errorf("expected Generic, got %q", env.AgentUsed)
	}
	if env.Matched || env.Confidence != ConfidenceFallback {
		t.Errorf("expected fallback confidence, got matched=%v confidence=%v", env.Matched, env.Confidence)
	}
	if len(env.Options) != 0 {
		t.Errorf("expected no options, got %d", len(env.Options))
	}
	if env.Text != llm.reply {
		t.Errorf("expected model reply, got %q", env.Text)
	}

	turns := f.history(t, "u1")
	if len(turns) != 1 {
		t.Fatalf("expected exactly 1 turn, got %d", len(turns))
	}
	if turns[0].AgentUsed != "Generic" {
		t.Errorf("expected turn agent Generic, got %q", turns[0].AgentUsed)
	}
}

func TestHandleQuery_TripPlanning(t *testing.T) {
	llm := &scriptedLLM{
		classify: "代理编号: 1\n理由: 用户需要行程规划",
		reply:    "第一天：故宫、天安门广场……",
	}
	f := newFixture(t, llm)
	query := "请帮我规划北京五天的行程，预算5000"

	env, err := f.o.HandleQuery(context.Background(), agent.Query{Text: query, UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.AgentUsed != "TripPlanning" {
		t.Errorf("expected TripPlanning, got %q", env.AgentUsed)
	}
	if env.Confidence != ConfidenceMatched || env.Error != "" {
		t.Errorf("unexpected envelope: %+v", env)
	}
	if strings.TrimSpace(env.Text) == "" {
		t.Fatal("expected non-empty text")
	}
	prompt := llm.lastPrompt()
	if !strings.Contains(prompt, "北京") || !strings.Contains(prompt, "5000") {
		t.Errorf("expected hints in prompt, got %q", prompt)
	}

	turns := f.history(t, "u1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Query != query || turns[0].Response != env.Text {
		t.Errorf("turn does not match request: %+v", turns[0])
	}
}

func TestHandleQuery_TransportFlightFailure(t *testing.T) {
	llm := &scriptedLLM{classify: "代理编号: 2\n理由: 交通", reply: "should not be used"}
	flights := &failingFlights{}
	f := newFixture(t, llm, withFlights(flights))

	env, err := f.o.HandleQuery(context.Background(), agent.Query{
		Text:    "从上海去北京怎么走",
		UserID:  "u1",
		Context: map[string]string{handlers.KeyPreferredMode: "飞机"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.AgentUsed != "Transport" {
		t.Errorf("expected Transport, got %q", env.AgentUsed)
	}
	if env.Text != ApologyText {
		t.Errorf("expected apology, got %q", env.Text)
	}
	if env.Error != handlers.ErrMsgTransport {
		t.Errorf("expected transport error message, got %q", env.Error)
	}
	if flights.calls == 0 {
		t.Error("expected the flight provider to be consulted")
	}
	if len(llm.prompts) != 0 {
		t.Errorf("expected no synthesis call, got %d", len(llm.prompts))
	}

	turns := f.history(t, "u1")
	if len(turns) != 1 || turns[0].Response != ApologyText {
		t.Fatalf("expected the apology to be recorded, got %+v", turns)
	}
}

func TestHandleQuery_ProviderTimeoutRecordsApology(t *testing.T) {
	llm := &scriptedLLM{classify: "代理编号: 3\n理由: 住宿", reply: "should not be used"}
	registry := agent.NewRegistry(handlers.NewAll(handlers.Deps{LLM: llm, Hotels: stalledHotels{}}, handlers.Config{
		ProviderTimeout:   20 * time.Millisecond,
		GenerationTimeout: time.Second,
		RetryBackoff:      time.Millisecond,
	})...)
	f := newFixture(t, llm, withRegistry(registry))

	start := time.Now()
	env, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "上海酒店推荐", UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("query took %v", elapsed)
	}
	if env.AgentUsed != "Accommodation" || env.Text != ApologyText || env.Error != handlers.ErrMsgAccommodation {
		t.Errorf("unexpected envelope: %+v", env)
	}
	if len(llm.prompts) != 0 {
		t.Errorf("expected no synthesis call, got %d", len(llm.prompts))
	}

	turns := f.history(t, "u1")
	if len(turns) != 1 || turns[0].Response != ApologyText || turns[0].AgentUsed != "Accommodation" {
		t.Fatalf("expected the apology to be recorded, got %+v", turns)
	}
}

func TestHandleQuery_TripOwnership(t *testing.T) {
	trip := model.Trip{
		ID:          "trip-a",
		UserID:      "alice",
		Destination: "京都",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Budget:      8000,
		Interests:   []string{"寺庙", "美食"},
		TravelStyle: "悠闲",
	}

	t.Run("owner gets the trip folded in", func(t *testing.T) {
		llm := &scriptedLLM{classify: "代理编号: 1", reply: "行程如下"}
		f := newFixture(t, llm)
		f.trips.Put(trip)

		if _, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "帮我安排一下", UserID: "alice", TripID: "trip-a"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prompt := llm.lastPrompt()
		for _, want := range []string{"京都", "8000", "寺庙、美食", "悠闲"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("expected %q in prompt", want)
			}
		}
		turns := f.history(t, "alice")
		if len(turns) != 1 || turns[0].TripID != "trip-a" {
			t.Errorf("expected turn scoped to trip-a, got %+v", turns)
		}
	})

	t.Run("other user sees nothing of the trip", func(t *testing.T) {
		llm := &scriptedLLM{classify: "代理编号: 1", reply: "行程如下"}
		f := newFixture(t, llm)
		f.trips.Put(trip)

		env, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "帮我安排一下", UserID: "bob", TripID: "trip-a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.Error != "" {
			t.Errorf("ownership mismatch must not be an error, got %q", env.Error)
		}
		if containsAny(llm.lastPrompt(), "京都", "8000", "2025-06-01", "寺庙") {
			t.Errorf("trip leaked into prompt: %q", llm.lastPrompt())
		}
		if f.l.warns == 0 {
			t.Error("expected the ownership mismatch to be logged")
		}
		turns := f.history(t, "bob")
		if len(turns) != 1 || turns[0].TripID != "" {
			t.Errorf("expected an unscoped turn, got %+v", turns)
		}
	})

	t.Run("caller context wins over trip fields", func(t *testing.T) {
		llm := &scriptedLLM{classify: "代理编号: 1", reply: "行程如下"}
		f := newFixture(t, llm)
		f.trips.Put(trip)

		_, err := f.o.HandleQuery(context.Background(), agent.Query{
			Text:    "帮我安排一下",
			UserID:  "alice",
			TripID:  "trip-a",
			Context: map[string]string{handlers.KeyDestination: "大阪"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(llm.lastPrompt(), "大阪") {
			t.Errorf("expected caller destination in prompt: %q", llm.lastPrompt())
		}
	})
}

func TestHandleQuery_Validation(t *testing.T) {
	f := newFixture(t, &scriptedLLM{})

	if _, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "   ", UserID: "u1"}); !errors.Is(err, agent.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	if _, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "hi"}); !errors.Is(err, agent.ErrMissingUser) {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}
	if n := len(f.history(t, "u1")); n != 0 {
		t.Errorf("rejected requests must not be recorded, got %d turns", n)
	}
}

func TestHandleQuery_Cancelled(t *testing.T) {
	llm := &scriptedLLM{classify: "代理编号: 1", reply: "行程如下"}
	f := newFixture(t, llm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.o.HandleQuery(ctx, agent.Query{Text: "规划三天行程", UserID: "u1"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n := len(f.history(t, "u1")); n != 0 {
		t.Errorf("cancelled request must not be recorded, got %d turns", n)
	}
}

func TestHandleQuery_OneTurnPerCall(t *testing.T) {
	llm := &scriptedLLM{classify: "代理编号: 4", reply: "Hello"}
	f := newFixture(t, llm)
	q := agent.Query{Text: "把你好翻译成英语", UserID: "u1", Context: map[string]string{"targetLanguage": "英语"}}

	for i := 1; i <= 3; i++ {
		if _, err := f.o.HandleQuery(context.Background(), q); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if n := len(f.history(t, "u1")); n != i {
			t.Fatalf("after call %d expected %d turns, got %d", i, i, n)
		}
	}
}

func TestHandleQuery_Concurrent(t *testing.T) {
	llm := &scriptedLLM{classify: "代理编号: 1", reply: "ok"}
	f := newFixture(t, llm)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = f.o.HandleQuery(context.Background(), agent.Query{Text: fmt.Sprintf("行程 %d", i), UserID: "u1"})
		}(i)
	}
	wg.Wait()

	turns := f.history(t, "u1")
	if len(turns) != 20 {
		t.Fatalf("expected 20 turns, got %d", len(turns))
	}
	for i := 1; i < len(turns); i++ {
		if turns[i].Timestamp.Before(turns[i-1].Timestamp) {
			t.Fatalf("turns out of order at %d", i)
		}
	}
}

func TestHandleQuery_PanicRecovered(t *testing.T) {
	llm := &scriptedLLM{classify: "nothing useful"}
	f := newFixture(t, llm, withRegistry(agent.NewRegistry(panicHandler{})))

	env, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "hello?", UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Text != ApologyText || env.Error != ErrMsgInternal {
		t.Errorf("expected apology envelope, got %+v", env)
	}
	if turns := f.history(t, "u1"); len(turns) != 1 || turns[0].Response != ApologyText {
		t.Errorf("expected the apology to be recorded, got %+v", turns)
	}
}

func TestHandleQuery_NoHandler(t *testing.T) {
	f := newFixture(t, &scriptedLLM{classify: "代理编号: 3"}, withRegistry(agent.NewRegistry()))

	env, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "订酒店", UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Error != ErrMsgNoHandler || env.Text != ApologyText {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestHandleQuery_PersistFailureIsSilent(t *testing.T) {
	llm := &scriptedLLM{classify: "代理编号: 1", reply: "行程如下"}
	f := newFixture(t, llm, withStore(brokenStore{}))

	env, err := f.o.HandleQuery(context.Background(), agent.Query{Text: "规划行程", UserID: "u1"})
	if err != nil {
		t.Fatalf("persistence failure must not surface, got %v", err)
	}
	if env.Text != "行程如下" || env.Error != "" {
		t.Errorf("unexpected envelope: %+v", env)
	}
	if len(f.l.errors) != 1 || !strings.HasPrefix(f.l.errors[0], "%s") {
		t.Errorf("expected one logged persistence error, got %v", f.l.errors)
	}
}

func TestHistory(t *testing.T) {
	llm := &scriptedLLM{classify: "代理编号: 1", reply: "ok"}
	f := newFixture(t, llm)
	f.trips.Put(model.Trip{ID: "t1", UserID: "u1", Destination: "西安"})
	f.trips.Put(model.Trip{ID: "t2", UserID: "u1", Destination: "成都"})
	ctx := context.Background()

	for _, q := range []agent.Query{
		{Text: "a", UserID: "u1", TripID: "t1"},
		{Text: "b", UserID: "u1", TripID: "t2"},
		{Text: "c", UserID: "u1"},
		{Text: "d", UserID: "u2"},
	} {
		if _, err := f.o.HandleQuery(ctx, q); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	t.Run("trip scope", func(t *testing.T) {
		turns, err := f.o.History(ctx, model.Scope{UserID: "u1"}, agent.HistoryInput{TripID: "t1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(turns) != 1 || turns[0].Query != "a" {
			t.Errorf("unexpected turns: %+v", turns)
		}
	})

	t.Run("user scope", func(t *testing.T) {
		turns, _ := f.o.History(ctx, model.Scope{UserID: "u1"}, agent.HistoryInput{})
		if len(turns) != 3 {
			t.Errorf("expected 3 turns, got %d", len(turns))
		}
	})

	t.Run("clear trip then user", func(t *testing.T) {
		n, err := f.o.ClearHistory(ctx, model.Scope{UserID: "u1"}, agent.HistoryInput{TripID: "t2"})
		if err != nil || n != 1 {
			t.Fatalf("expected 1 removed, got %d (%v)", n, err)
		}
		n, _ = f.o.ClearHistory(ctx, model.Scope{UserID: "u1"}, agent.HistoryInput{})
		if n != 2 {
			t.Errorf("expected 2 removed, got %d", n)
		}
		if turns, _ := f.o.History(ctx, model.Scope{UserID: "u2"}, agent.HistoryInput{}); len(turns) != 1 {
			t.Errorf("other users must be untouched, got %d", len(turns))
		}
	})

	t.Run("missing user", func(t *testing.T) {
		if _, err := f.o.History(ctx, model.Scope{}, agent.HistoryInput{}); !errors.Is(err, agent.ErrMissingUser) {
			t.Errorf("expected ErrMissingUser, got %v", err)
		}
	})
}

func TestHistory_StoreFailure(t *testing.T) {
	f := newFixture(t, &scriptedLLM{}, withStore(brokenStore{}))

	if _, err := f.o.History(context.Background(), model.Scope{UserID: "u1"}, agent.HistoryInput{}); !errors.Is(err, agent.ErrPersistenceFailure) {
		t.Errorf("expected ErrPersistenceFailure, got %v", err)
	}
	if _, err := f.o.ClearHistory(context.Background(), model.Scope{UserID: "u1"}, agent.HistoryInput{}); !errors.Is(err, agent.ErrPersistenceFailure) {
		t.Errorf("expected ErrPersistenceFailure, got %v", err)
	}
}

func TestFoldTrip(t *testing.T) {
	f := newFixture(t, &scriptedLLM{})
	queryCtx := map[string]string{handlers.KeyBudget: "3000"}

	f.o.foldTrip(queryCtx, model.Trip{
		ID:          "t1",
		UserID:      "u1",
		Destination: "杭州",
		StartDate:   time.Date(2025, 4, 30, 20, 0, 0, 0, time.UTC), // 2025-05-01 in Shanghai
		EndDate:     time.Date(2025, 5, 3, 2, 0, 0, 0, time.UTC),
		Budget:      6000,
		Interests:   []string{"西湖"},
	})

	want := map[string]string{
		handlers.KeyDestination: "杭州",
		handlers.KeyStartDate:   "2025-05-01",
		handlers.KeyEndDate:     "2025-05-03",
		handlers.KeyBudget:      "3000",
		handlers.KeyInterests:   "西湖",
		handlers.KeyDuration:    "2",
	}
	for k, v := range want {
		if queryCtx[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, queryCtx[k])
		}
	}
	summary := queryCtx[handlers.KeyTripSummary]
	if !strings.Contains(summary, "目的地: 杭州") || !strings.Contains(summary, "共2天") {
		t.Errorf("unexpected summary %q", summary)
	}
	if _, ok := queryCtx[handlers.KeyTravelStyle]; ok {
		t.Error("blank trip fields must not be added")
	}
}
