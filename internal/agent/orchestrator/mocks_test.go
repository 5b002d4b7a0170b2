package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/agent/handlers"
	convrepo "travel-assistant/internal/conversation/repository"
	convmemory "travel-assistant/internal/conversation/repository/memory"
	"travel-assistant/internal/model"
	"travel-assistant/internal/provider"
	providermock "travel-assistant/internal/provider/mock"
	"travel-assistant/internal/router"
	tripmemory "travel-assistant/internal/trip/repository/memory"
	"travel-assistant/pkg/datemath"
)

// scriptedLLM answers classification prompts with classify and every other
// prompt with reply.
type scriptedLLM struct {
	mu       sync.Mutex
	classify string
	reply    string
	replyErr error
	prompts  []string
}

func (m *scriptedLLM) GenerateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	if temperature == router.ClassifyTemperature {
		return m.classify, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.replyErr
}

func (m *scriptedLLM) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

type failingFlights struct {
	mu    sync.Mutex
	calls int
}

func (f *failingFlights) SearchFlights(ctx context.Context, opt provider.SearchFlightsOptions) ([]provider.FlightOption, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return nil, provider.ErrUnavailable
}

type panicHandler struct{}

func (panicHandler) Category() model.Category { return model.CategoryGeneric }
func (panicHandler) Handle(ctx context.Context, in agent.Input) agent.AgentResponse {
	panic("boom")
}

// brokenStore fails every write and read.
type brokenStore struct{}

func (brokenStore) Append(ctx context.Context, opt convrepo.AppendOptions) (model.ConversationTurn, error) {
	return model.ConversationTurn{}, convrepo.ErrFailedToInsert
}
func (brokenStore) List(ctx context.Context, opt convrepo.ScopeOptions) ([]model.ConversationTurn, error) {
	return nil, convrepo.ErrFailedToList
}
func (brokenStore) DeleteScope(ctx context.Context, opt convrepo.ScopeOptions) (int64, error) {
	return 0, errors.New("connection refused")
}

type mockLogger struct {
	mu     sync.Mutex
	warns  int
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    { m.addWarn() }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  { m.addWarn() }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   { m.addError(firstString(arg)) }
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) { m.addError(template) }
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func (m *mockLogger) addWarn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns++
}

func (m *mockLogger) addError(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, s)
}

func firstString(arg []any) string {
	if len(arg) == 0 {
		return ""
	}
	s, _ := arg[0].(string)
	return s
}

type fixture struct {
	o     *Orchestrator
	llm   *scriptedLLM
	store convrepo.Repository
	trips interface{ Put(model.Trip) }
	l     *mockLogger
}

type fixtureOption func(*handlers.Deps, *Deps)

func withFlights(p provider.FlightProvider) fixtureOption {
	return func(hd *handlers.Deps, _ *Deps) { hd.Flights = p }
}

func withStore(s convrepo.Repository) fixtureOption {
	return func(_ *handlers.Deps, d *Deps) { d.Conversations = s }
}

func withRegistry(r *agent.Registry) fixtureOption {
	return func(_ *handlers.Deps, d *Deps) { d.Registry = r }
}

func newFixture(t *testing.T, llm *scriptedLLM, opts ...fixtureOption) *fixture {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	l := &mockLogger{}
	data := providermock.New(dates.Location())

	hd := handlers.Deps{
		LLM:       llm,
		Flights:   data,
		Hotels:    data,
		Places:    data,
		Weather:   data,
		Transport: data,
		Logger:    l,
	}
	trips := tripmemory.New()
	d := Deps{
		Router:        router.New(llm, l, time.Second),
		Trips:         trips,
		Conversations: convmemory.New(nil),
		Logger:        l,
	}
	for _, opt := range opts {
		opt(&hd, &d)
	}
	if d.Registry == nil {
		d.Registry = agent.NewRegistry(handlers.NewAll(hd, handlers.Config{
			MaxOptions:        10,
			ProviderTimeout:   time.Second,
			GenerationTimeout: time.Second,
			RetryBackoff:      time.Millisecond,
			Dates:             dates,
			Now:               func() time.Time { return time.Date(2025, 5, 1, 9, 0, 0, 0, dates.Location()) },
		})...)
	}

	return &fixture{
		o:     New(d, Config{Dates: dates, PersistTimeout: time.Second}),
		llm:   llm,
		store: d.Conversations,
		trips: trips,
		l:     l,
	}
}

func (f *fixture) history(t *testing.T, userID string) []model.ConversationTurn {
	t.Helper()
	turns, err := f.store.List(context.Background(), convrepo.ScopeOptions{UserID: userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return turns
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// stalledHotels blocks every search until the caller's deadline.
type stalledHotels struct{}

func (stalledHotels) SearchHotels(ctx context.Context, opt provider.SearchHotelsOptions) ([]provider.HotelOption, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
