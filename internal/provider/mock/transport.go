package mock

import (
	"context"
	"fmt"

	"travel-assistant/internal/provider"
)

type legSeed struct {
	mode     string
	hour     int
	duration string
	price    float64
	seat     string
	ticket   string
}

var legSeeds = []legSeed{
	{ModeTrain, 8, "3小时", 100, "一等座", "123456"},
	{ModeTrain, 12, "2小时", 80, "二等座", "654321"},
	{ModePlane, 14, "1小时", 500, "头等舱", "111111"},
	{ModePlane, 18, "1小时", 400, "商务舱", "222222"},
}

// SearchLegs returns the public transport connections for the day.
func (p *Provider) SearchLegs(ctx context.Context, opt provider.SearchLegsOptions) ([]provider.TransportLeg, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opt.Origin == "" || opt.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", provider.ErrInvalidOptions)
	}

	legs := make([]provider.TransportLeg, 0, len(legSeeds))
	for _, s := range legSeeds {
		legs = append(legs, provider.TransportLeg{
			Mode:          s.mode,
			Origin:        opt.Origin,
			Destination:   opt.Destination,
			DepartureTime: p.at(opt.Date, s.hour, 0),
			Duration:      s.duration,
			Price:         s.price,
			Currency:      CurrencyCNY,
			SeatClass:     s.seat,
			TicketNumber:  s.ticket,
		})
	}
	return legs, nil
}
