package mock

import (
	"time"

	"travel-assistant/internal/provider"
)

// Provider serves deterministic flight, hotel, transport and weather data.
// It stands in for real vendor APIs in development and tests.
type Provider struct {
	loc *time.Location
}

var (
	_ provider.FlightProvider    = (*Provider)(nil)
	_ provider.HotelProvider     = (*Provider)(nil)
	_ provider.TransportProvider = (*Provider)(nil)
	_ provider.WeatherProvider   = (*Provider)(nil)
	_ provider.PlaceProvider     = (*Provider)(nil)
)

// New creates a mock Provider. Times are rendered in loc (UTC when nil).
func New(loc *time.Location) *Provider {
	if loc == nil {
		loc = time.UTC
	}
	return &Provider{loc: loc}
}

// at returns the given wall clock on date's calendar day.
func (p *Provider) at(date time.Time, hour, minute int) time.Time {
	if date.IsZero() {
		date = time.Now()
	}
	d := date.In(p.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.loc)
}
