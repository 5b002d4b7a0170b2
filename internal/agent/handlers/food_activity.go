package handlers

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/internal/provider"
)

// FoodActivity recommends restaurants, or activities folded with the weather.
type FoodActivity struct {
	base
	places  provider.PlaceProvider
	weather provider.WeatherProvider
}

var _ agent.Handler = (*FoodActivity)(nil)

func NewFoodActivity(d Deps, cfg Config) *FoodActivity {
	return &FoodActivity{base: newBase(d, cfg), places: d.Places, weather: d.Weather}
}

func (h *FoodActivity) Category() model.Category {
	return model.CategoryFoodActivity
}

// Operation selects the sub-operation for in.
func (h *FoodActivity) Operation(in agent.Input) string {
	rule, _ := h.cfg.Rules.FoodActivity.Evaluate(in)
	return rule.Value
}

func (h *FoodActivity) Handle(ctx context.Context, in agent.Input) agent.AgentResponse {
	in = h.prepare(in)
	if h.Operation(in) == OperationActivities {
		return h.activities(ctx, in)
	}
	return h.restaurants(ctx, in)
}

// RestaurantRecommendations runs the restaurant sub-operation directly.
func (h *FoodActivity) RestaurantRecommendations(ctx context.Context, in agent.Input) agent.AgentResponse {
	return h.restaurants(ctx, h.prepare(in))
}

// ActivityRecommendations runs the activity sub-operation directly.
func (h *FoodActivity) ActivityRecommendations(ctx context.Context, in agent.Input) agent.AgentResponse {
	return h.activities(ctx, h.prepare(in))
}

func (h *FoodActivity) restaurants(ctx context.Context, in agent.Input) agent.AgentResponse {
	location := in.Value(KeyDestination)

	var options []provider.RestaurantOption
	if location != "" && h.places != nil {
		var err error
		options, err = fetch(ctx, h.base, func(ctx context.Context) ([]provider.RestaurantOption, error) {
			return h.places.SearchRestaurants(ctx, provider.SearchRestaurantsOptions{
				Location: location,
				Cuisine:  in.Value(KeyCuisine),
				Budget:   budgetTier(in.Value(KeyBudget)),
			})
		})
		if err != nil {
			return h.fail(ctx, LogPrefixRestaurants, ErrMsgRestaurants, err)
		}
	}
	options = truncate(options, h.limit(MaxRestaurantOptions))

	prompt := fmt.Sprintf(PromptRestaurants,
		orUnspecified(location),
		h.formatDate(h.date(in, KeyDate, KeyStartDate), in.Value(KeyDate)),
		orUnspecified(in.Value(KeyTime)),
		orUnspecified(in.Value(KeyBudget)),
		orUnspecified(in.Value(KeyCuisine)),
		orUnspecified(in.Value(KeyDietary)),
		orUnspecified(in.Value(KeyPeople)),
		orUnspecified(in.Value(KeyOccasion)),
		toJSON(options),
		in.Query,
	)

	text, err := h.generate(ctx, prompt, TemperatureFoodActivity)
	if err != nil {
		return h.fail(ctx, LogPrefixRestaurants, ErrMsgRestaurants, err)
	}
	return agent.Succeeded(text, lo.Map(options, func(o provider.RestaurantOption, _ int) agent.ExternalOption {
		return agent.RestaurantOption(o)
	}))
}

func (h *FoodActivity) activities(ctx context.Context, in agent.Input) agent.AgentResponse {
	location := in.Value(KeyDestination)
	date := h.date(in, KeyDate, KeyStartDate)
	if date.IsZero() {
		date = h.cfg.Dates.StartOfDay(h.cfg.Now())
	}

	var (
		options []provider.ActivityOption
		weather *provider.WeatherSnapshot
	)
	if location != "" {
		// Options and weather are independent; synthesis waits for both.
		g, gctx := errgroup.WithContext(ctx)
		if h.places != nil {
			g.Go(func() error {
				var err error
				options, err = fetch(gctx, h.base, func(ctx context.Context) ([]provider.ActivityOption, error) {
					return h.places.SearchActivities(ctx, provider.SearchActivitiesOptions{
						Location: location,
						Type:     in.Value(KeyActivityType),
						Budget:   budgetTier(in.Value(KeyBudget)),
					})
				})
				return err
			})
		}
		if h.weather != nil {
			g.Go(func() error {
				w, err := fetch(gctx, h.base, func(ctx context.Context) (provider.WeatherSnapshot, error) {
					return h.weather.GetWeather(ctx, provider.GetWeatherOptions{Location: location, Date: date})
				})
				if err != nil {
					return err
				}
				weather = &w
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return h.fail(ctx, LogPrefixActivities, ErrMsgActivities, err)
		}
	}
	options = truncate(options, h.limit(MaxActivityOptions))

	weatherText := Unspecified
	if weather != nil {
		weatherText = toJSON(weather)
	}
	prompt := fmt.Sprintf(PromptActivities,
		orUnspecified(location),
		h.cfg.Dates.Format(date),
		orUnspecified(in.Value(KeyTime)),
		orUnspecified(in.Value(KeyBudget)),
		orUnspecified(in.Value(KeyInterests)),
		orUnspecified(in.Value(KeyActivityType)),
		orUnspecified(in.Value(KeyPeople)),
		weatherText,
		toJSON(options),
		in.Query,
	)

	text, err := h.generate(ctx, prompt, TemperatureFoodActivity)
	if err != nil {
		return h.fail(ctx, LogPrefixActivities, ErrMsgActivities, err)
	}
	return agent.Succeeded(text, lo.Map(options, func(o provider.ActivityOption, _ int) agent.ExternalOption {
		return agent.ActivityOption(o)
	}))
}
