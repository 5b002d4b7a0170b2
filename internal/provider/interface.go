package provider

import "context"

// FlightProvider searches flights between two cities on a date.
type FlightProvider interface {
	SearchFlights(ctx context.Context, opt SearchFlightsOptions) ([]FlightOption, error)
}

// HotelProvider searches accommodation at a destination.
type HotelProvider interface {
	SearchHotels(ctx context.Context, opt SearchHotelsOptions) ([]HotelOption, error)
}

// PlaceProvider searches restaurants and activities around a location.
type PlaceProvider interface {
	SearchRestaurants(ctx context.Context, opt SearchRestaurantsOptions) ([]RestaurantOption, error)
	SearchActivities(ctx context.Context, opt SearchActivitiesOptions) ([]ActivityOption, error)
}

// WeatherProvider returns a weather snapshot for a location and day.
type WeatherProvider interface {
	GetWeather(ctx context.Context, opt GetWeatherOptions) (WeatherSnapshot, error)
}

// TransportProvider lists public transport legs between two cities.
type TransportProvider interface {
	SearchLegs(ctx context.Context, opt SearchLegsOptions) ([]TransportLeg, error)
}
