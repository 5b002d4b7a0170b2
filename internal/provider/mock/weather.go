package mock

import (
	"context"
	"fmt"
	"hash/fnv"

	"travel-assistant/internal/provider"
)

// GetWeather derives a stable forecast from the location and day so that
// repeated queries produce the same prompt.
func (p *Provider) GetWeather(ctx context.Context, opt provider.GetWeatherOptions) (provider.WeatherSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return provider.WeatherSnapshot{}, err
	}
	if opt.Location == "" {
		return provider.WeatherSnapshot{}, fmt.Errorf("%w: location is required", provider.ErrInvalidOptions)
	}

	day := p.at(opt.Date, 0, 0).Format("2006-01-02")
	h := fnv.New32a()
	_, _ = h.Write([]byte(opt.Location + "|" + day))
	seed := h.Sum32()

	return provider.WeatherSnapshot{
		Location:    opt.Location,
		Date:        day,
		Temperature: float64(5 + seed%30),
		Condition:   weatherConditions[seed%uint32(len(weatherConditions))],
		Humidity:    30 + int(seed%50),
		WindSpeed:   float64(seed % 30),
	}, nil
}
