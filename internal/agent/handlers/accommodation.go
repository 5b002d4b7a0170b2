package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/internal/provider"
)

var accommodationTypes = []string{"酒店", "民宿", "公寓"}

// Accommodation recommends hotels, homestays and apartments.
type Accommodation struct {
	base
	hotels provider.HotelProvider
}

var _ agent.Handler = (*Accommodation)(nil)

func NewAccommodation(d Deps, cfg Config) *Accommodation {
	return &Accommodation{base: newBase(d, cfg), hotels: d.Hotels}
}

func (h *Accommodation) Category() model.Category {
	return model.CategoryAccommodation
}

func (h *Accommodation) Handle(ctx context.Context, in agent.Input) agent.AgentResponse {
	in = h.prepare(in)
	destination := in.Value(KeyDestination)
	checkIn := h.date(in, KeyCheckIn, KeyStartDate)
	checkOut := h.date(in, KeyCheckOut, KeyEndDate)
	guests := atoiOr(firstNonBlank(in.Value(KeyGuests), in.Value(KeyPeople), in.Value(KeyPassengers)), 1)
	kind := accommodationType(in)

	var hotels []provider.HotelOption
	if destination != "" && h.hotels != nil {
		var err error
		hotels, err = fetch(ctx, h.base, func(ctx context.Context) ([]provider.HotelOption, error) {
			return h.hotels.SearchHotels(ctx, provider.SearchHotelsOptions{
				Destination: destination,
				CheckIn:     checkIn,
				CheckOut:    checkOut,
				Guests:      guests,
				Type:        kind,
			})
		})
		if err != nil {
			return h.fail(ctx, LogPrefixAccommodation, ErrMsgAccommodation, err)
		}
	}
	hotels = truncate(hotels, h.limit(MaxHotelOptions))

	prompt := fmt.Sprintf(PromptAccommodation,
		orUnspecified(destination),
		h.formatDate(checkIn, in.Value(KeyCheckIn)),
		h.formatDate(checkOut, in.Value(KeyCheckOut)),
		orUnspecified(in.Value(KeyBudget)),
		orUnspecified(kind),
		orUnspecified(in.Value(KeyTravelPurpose)),
		strconv.Itoa(guests),
		orUnspecified(in.Value(KeySpecialRequirements)),
		toJSON(hotels),
		in.Query,
	)

	text, err := h.generate(ctx, prompt, TemperatureAccommodation)
	if err != nil {
		return h.fail(ctx, LogPrefixAccommodation, ErrMsgAccommodation, err)
	}
	return agent.Succeeded(text, lo.Map(hotels, func(o provider.HotelOption, _ int) agent.ExternalOption {
		return agent.HotelOption(o)
	}))
}

// accommodationType resolves the preferred type from context, then the query.
func accommodationType(in agent.Input) string {
	for _, s := range []string{in.Value(KeyAccommodationType), in.Query} {
		for _, t := range accommodationTypes {
			if strings.Contains(s, t) {
				return t
			}
		}
	}
	return ""
}
