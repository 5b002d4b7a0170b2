package provider

import "time"

// FlightOption is one bookable flight returned by a FlightProvider.
type FlightOption struct {
	ID             string    `json:"id"`
	Airline        string    `json:"airline"`
	FlightNumber   string    `json:"flightNumber"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	Duration       string    `json:"duration"`
	Price          float64   `json:"price"`
	Currency       string    `json:"currency"`
	CabinClass     string    `json:"cabinClass"`
	SeatsAvailable int       `json:"seatsAvailable"`
}

// HotelOption is one accommodation returned by a HotelProvider.
type HotelOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Amenities   []string `json:"amenities,omitempty"`
	Description string   `json:"description,omitempty"`
	Available   bool     `json:"available"`
}

// RestaurantOption is one restaurant returned by a PlaceProvider.
type RestaurantOption struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Rating     float64 `json:"rating"`
	PriceLevel int     `json:"priceLevel"`
	OpenNow    *bool   `json:"openNow,omitempty"`
}

// ActivityOption is one attraction or activity returned by a PlaceProvider.
type ActivityOption struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     float64  `json:"rating"`
	PriceLevel int      `json:"priceLevel"`
	Types      []string `json:"types,omitempty"`
}

// TransportLeg is one ground or air public transport connection.
type TransportLeg struct {
	Mode          string    `json:"mode"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	Duration      string    `json:"duration"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	SeatClass     string    `json:"seatClass"`
	TicketNumber  string    `json:"ticketNumber"`
}

// WeatherSnapshot is the forecast for one location and day.
type WeatherSnapshot struct {
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// --- Search options ---

type SearchFlightsOptions struct {
	Origin      string
	Destination string
	Date        time.Time
}

type SearchHotelsOptions struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	Type        string // 酒店 / 民宿 / 公寓, empty for all
}

// Budget tiers understood by PlaceProvider searches.
const (
	BudgetLow  = "low"
	BudgetHigh = "high"
)

type SearchRestaurantsOptions struct {
	Location string
	Cuisine  string
	Budget   string
}

type SearchActivitiesOptions struct {
	Location string
	Type     string
	Budget   string
}

type SearchLegsOptions struct {
	Origin      string
	Destination string
	Date        time.Time
}

type GetWeatherOptions struct {
	Location string
	Date     time.Time
}
