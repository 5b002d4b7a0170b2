package handlers

import (
	"context"
	"sync"
	"time"

	"travel-assistant/internal/provider"
	"travel-assistant/pkg/datemath"
)

type mockLLM struct {
	mu          sync.Mutex
	text        string
	err         error
	calls       int
	prompt      string
	temperature float64
}

func (m *mockLLM) GenerateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.prompt = prompt
	m.temperature = temperature
	return m.text, m.err
}

type mockProviders struct {
	mu sync.Mutex

	flights     []provider.FlightOption
	flightsErr  error
	hotels      []provider.HotelOption
	hotelsErr   error
	legs        []provider.TransportLeg
	legsErr     error
	restaurants []provider.RestaurantOption
	activities  []provider.ActivityOption
	placesErr   error
	weather     provider.WeatherSnapshot
	weatherErr  error

	calls     map[string]int
	hotelOpts provider.SearchHotelsOptions
	flightOpt provider.SearchFlightsOptions
}

func (m *mockProviders) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *mockProviders) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockProviders) SearchFlights(ctx context.Context, opt provider.SearchFlightsOptions) ([]provider.FlightOption, error) {
	m.record("flights")
	m.mu.Lock()
	m.flightOpt = opt
	m.mu.Unlock()
	return m.flights, m.flightsErr
}

func (m *mockProviders) SearchHotels(ctx context.Context, opt provider.SearchHotelsOptions) ([]provider.HotelOption, error) {
	m.record("hotels")
	m.mu.Lock()
	m.hotelOpts = opt
	m.mu.Unlock()
	return m.hotels, m.hotelsErr
}

func (m *mockProviders) SearchLegs(ctx context.Context, opt provider.SearchLegsOptions) ([]provider.TransportLeg, error) {
	m.record("legs")
	return m.legs, m.legsErr
}

func (m *mockProviders) SearchRestaurants(ctx context.Context, opt provider.SearchRestaurantsOptions) ([]provider.RestaurantOption, error) {
	m.record("restaurants")
	return m.restaurants, m.placesErr
}

func (m *mockProviders) SearchActivities(ctx context.Context, opt provider.SearchActivitiesOptions) ([]provider.ActivityOption, error) {
	m.record("activities")
	return m.activities, m.placesErr
}

func (m *mockProviders) GetWeather(ctx context.Context, opt provider.GetWeatherOptions) (provider.WeatherSnapshot, error) {
	m.record("weather")
	return m.weather, m.weatherErr
}

func testDeps(llm *mockLLM, p *mockProviders) Deps {
	return Deps{
		LLM:       llm,
		Flights:   p,
		Hotels:    p,
		Places:    p,
		Weather:   p,
		Transport: p,
	}
}

func testConfig() Config {
	dates, _ := datemath.NewParser("Asia/Shanghai")
	return Config{
		MaxOptions:        10,
		ProviderTimeout:   time.Second,
		GenerationTimeout: time.Second,
		RetryBackoff:      time.Millisecond,
		Dates:             dates,
		Now: func() time.Time {
			return time.Date(2025, 5, 1, 9, 0, 0, 0, dates.Location())
		},
	}
}

// hangingHotels and hangingLLM block until their context ends.
type hangingHotels struct{}

func (hangingHotels) SearchHotels(ctx context.Context, _ provider.SearchHotelsOptions) ([]provider.HotelOption, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type hangingLLM struct{}

func (hangingLLM) GenerateText(ctx context.Context, _ string, _ float64) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}
