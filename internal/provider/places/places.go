package places

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/api/googleapi"
	placesapi "google.golang.org/api/places/v1"

	"travel-assistant/internal/provider"
)

// SearchRestaurants finds restaurants in the location, optionally narrowed
// by cuisine and budget tier.
func (c *Client) SearchRestaurants(ctx context.Context, opt provider.SearchRestaurantsOptions) ([]provider.RestaurantOption, error) {
	if strings.TrimSpace(opt.Location) == "" {
		return nil, fmt.Errorf("%w: location is required", provider.ErrInvalidOptions)
	}

	found, err := c.searchText(ctx, &placesapi.GoogleMapsPlacesV1SearchTextRequest{
		TextQuery:    textQuery(strings.TrimSpace(opt.Cuisine+" restaurants"), opt.Location),
		IncludedType: includedTypeRestaurant,
		PriceLevels:  budgetPriceLevels[opt.Budget],
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(found, func(p *placesapi.GoogleMapsPlacesV1Place, _ int) provider.RestaurantOption {
		out := provider.RestaurantOption{
			ID:         p.Id,
			Name:       displayName(p),
			Address:    p.FormattedAddress,
			Rating:     p.Rating,
			PriceLevel: priceLevels[p.PriceLevel],
		}
		if p.CurrentOpeningHours != nil {
			open := p.CurrentOpeningHours.OpenNow
			out.OpenNow = &open
		}
		return out
	}), nil
}

// SearchActivities finds attractions in the location. An empty type
// searches tourist attractions. Budget is not applied: most attractions
// carry no price level and a filter would drop them.
func (c *Client) SearchActivities(ctx context.Context, opt provider.SearchActivitiesOptions) ([]provider.ActivityOption, error) {
	if strings.TrimSpace(opt.Location) == "" {
		return nil, fmt.Errorf("%w: location is required", provider.ErrInvalidOptions)
	}

	what := strings.TrimSpace(opt.Type)
	if what == "" {
		what = defaultActivityQuery
	}
	found, err := c.searchText(ctx, &placesapi.GoogleMapsPlacesV1SearchTextRequest{
		TextQuery: textQuery(what, opt.Location),
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(found, func(p *placesapi.GoogleMapsPlacesV1Place, _ int) provider.ActivityOption {
		return provider.ActivityOption{
			ID:         p.Id,
			Name:       displayName(p),
			Address:    p.FormattedAddress,
			Rating:     p.Rating,
			PriceLevel: priceLevels[p.PriceLevel],
			Types:      p.Types,
		}
	}), nil
}

// textQuery puts the location in the free-text query; searchText has no
// city parameter.
func textQuery(what, location string) string {
	return what + " in " + strings.TrimSpace(location)
}

func (c *Client) searchText(ctx context.Context, req *placesapi.GoogleMapsPlacesV1SearchTextRequest) ([]*placesapi.GoogleMapsPlacesV1Place, error) {
	req.LanguageCode = c.language
	req.MaxResultCount = int64(c.maxResults)

	resp, err := c.service.Places.SearchText(req).Fields(googleapi.Field(fieldMask)).Context(ctx).Do()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: places: searchText %q: %v", provider.ErrUnavailable, req.TextQuery, err)
	}
	return lo.Filter(resp.Places, func(p *placesapi.GoogleMapsPlacesV1Place, _ int) bool { return p != nil }), nil
}

func displayName(p *placesapi.GoogleMapsPlacesV1Place) string {
	if p.DisplayName == nil {
		return ""
	}
	return p.DisplayName.Text
}
