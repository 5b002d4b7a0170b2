package mock

import (
	"context"
	"fmt"

	"travel-assistant/internal/provider"
)

type flightSeed struct {
	id, airline, number string
	depH, depM          int
	arrH, arrM          int
	price               float64
	seats               int
}

var flightSeeds = []flightSeed{
	{"FL123", "中国国际航空", "CA1234", 8, 0, 10, 30, 1280, 23},
	{"FL124", "东方航空", "MU5678", 12, 15, 14, 45, 1150, 12},
	{"FL125", "南方航空", "CZ9012", 16, 30, 19, 0, 980, 40},
}

// SearchFlights returns the three daily flights between origin and destination.
func (p *Provider) SearchFlights(ctx context.Context, opt provider.SearchFlightsOptions) ([]provider.FlightOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opt.Origin == "" || opt.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", provider.ErrInvalidOptions)
	}

	flights := make([]provider.FlightOption, 0, len(flightSeeds))
	for _, s := range flightSeeds {
		flights = append(flights, provider.FlightOption{
			ID:             s.id,
			Airline:        s.airline,
			FlightNumber:   s.number,
			Origin:         opt.Origin,
			Destination:    opt.Destination,
			DepartureTime:  p.at(opt.Date, s.depH, s.depM),
			ArrivalTime:    p.at(opt.Date, s.arrH, s.arrM),
			Duration:       "2h 30m",
			Price:          s.price,
			Currency:       CurrencyCNY,
			CabinClass:     "Economy",
			SeatsAvailable: s.seats,
		})
	}
	return flights, nil
}
