package agent

import (
	"strings"

	"travel-assistant/internal/model"
	"travel-assistant/internal/provider"
)

// OptionKind tags the variant carried by an ExternalOption.
type OptionKind string

const (
	OptionFlight       OptionKind = "flight"
	OptionHotel        OptionKind = "hotel"
	OptionRestaurant   OptionKind = "restaurant"
	OptionActivity     OptionKind = "activity"
	OptionTransportLeg OptionKind = "transport_leg"
)

// ExternalOption is one provider result surfaced to the caller. Exactly one
// of the payload pointers is set, matching Kind.
type ExternalOption struct {
	Kind         OptionKind                 `json:"kind"`
	Flight       *provider.FlightOption     `json:"flight,omitempty"`
	Hotel        *provider.HotelOption      `json:"hotel,omitempty"`
	Restaurant   *provider.RestaurantOption `json:"restaurant,omitempty"`
	Activity     *provider.ActivityOption   `json:"activity,omitempty"`
	TransportLeg *provider.TransportLeg     `json:"transportLeg,omitempty"`
}

func FlightOption(f provider.FlightOption) ExternalOption {
	return ExternalOption{Kind: OptionFlight, Flight: &f}
}

func HotelOption(h provider.HotelOption) ExternalOption {
	return ExternalOption{Kind: OptionHotel, Hotel: &h}
}

func RestaurantOption(r provider.RestaurantOption) ExternalOption {
	return ExternalOption{Kind: OptionRestaurant, Restaurant: &r}
}

func ActivityOption(a provider.ActivityOption) ExternalOption {
	return ExternalOption{Kind: OptionActivity, Activity: &a}
}

func TransportLegOption(l provider.TransportLeg) ExternalOption {
	return ExternalOption{Kind: OptionTransportLeg, TransportLeg: &l}
}

// AgentResponse is what every handler produces.
type AgentResponse struct {
	Success bool
	Text    string
	Options []ExternalOption
	Error   string // user-safe message, set when Success is false
}

// Succeeded builds a successful AgentResponse.
func Succeeded(text string, options []ExternalOption) AgentResponse {
	return AgentResponse{Success: true, Text: text, Options: options}
}

// Failed builds a degraded AgentResponse carrying a user-safe message.
func Failed(message string) AgentResponse {
	return AgentResponse{Success: false, Error: message}
}

// Input is the domain input handed to a Handler.
type Input struct {
	Query   string
	TripID  string
	UserID  string
	Context map[string]string
}

// Value returns the trimmed context value for key.
func (in Input) Value(key string) string {
	if in.Context == nil {
		return ""
	}
	return strings.TrimSpace(in.Context[key])
}

// --- UseCase Inputs / Outputs ---

// Query is one boundary request. It is not modified after receipt.
type Query struct {
	Text    string
	UserID  string
	TripID  string
	Context map[string]string
}

// Envelope is the normalized response returned for every processed query.
type Envelope struct {
	Text       string
	AgentUsed  string
	Confidence float64
	Error      string
	Options    []ExternalOption
	Category   model.Category
	Matched    bool
}

type HistoryInput struct {
	TripID string
}
