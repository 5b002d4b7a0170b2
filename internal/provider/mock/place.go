package mock

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"travel-assistant/internal/provider"
)

var _ provider.PlaceProvider = (*Provider)(nil)

var restaurantNames = []string{"本地风味馆", "老字号小吃", "江南私房菜", "川湘家常菜", "海鲜大排档", "素食轩", "西式简餐", "特色火锅", "茶餐厅", "夜市烧烤"}

var activityNames = []string{"历史博物馆", "古城步行街", "城市公园", "艺术中心", "观景台", "夜游码头", "传统戏剧院", "美食街", "植物园", "主题乐园"}

// SearchRestaurants returns ten restaurants around the location. Budget low
// keeps price levels 1-2, high keeps 3-4.
func (p *Provider) SearchRestaurants(ctx context.Context, opt provider.SearchRestaurantsOptions) ([]provider.RestaurantOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opt.Location == "" {
		return nil, fmt.Errorf("%w: location is required", provider.ErrInvalidOptions)
	}

	all := lo.Map(restaurantNames, func(name string, i int) provider.RestaurantOption {
		if opt.Cuisine != "" {
			name = opt.Cuisine + "·" + name
		}
		return provider.RestaurantOption{
			ID:         fmt.Sprintf("R%03d", i+1),
			Name:       name,
			Address:    fmt.Sprintf("%s美食街%d号", opt.Location, i+1),
			Rating:     4.9 - float64(i)*0.1,
			PriceLevel: 1 + i%4,
		}
	})
	return lo.Filter(all, func(r provider.RestaurantOption, _ int) bool {
		return inBudget(r.PriceLevel, opt.Budget)
	}), nil
}

// SearchActivities returns ten attractions around the location.
func (p *Provider) SearchActivities(ctx context.Context, opt provider.SearchActivitiesOptions) ([]provider.ActivityOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opt.Location == "" {
		return nil, fmt.Errorf("%w: location is required", provider.ErrInvalidOptions)
	}

	all := lo.Map(activityNames, func(name string, i int) provider.ActivityOption {
		types := []string{"tourist_attraction"}
		if opt.Type != "" {
			types = append(types, opt.Type)
		}
		return provider.ActivityOption{
			ID:         fmt.Sprintf("A%03d", i+1),
			Name:       opt.Location + name,
			Address:    fmt.Sprintf("%s景区路%d号", opt.Location, i+1),
			Rating:     4.8 - float64(i)*0.1,
			PriceLevel: i % 4,
			Types:      types,
		}
	})
	return lo.Filter(all, func(a provider.ActivityOption, _ int) bool {
		return inBudget(a.PriceLevel, opt.Budget)
	}), nil
}

func inBudget(level int, budget string) bool {
	switch budget {
	case provider.BudgetLow:
		return level <= 2
	case provider.BudgetHigh:
		return level >= 3
	}
	return true
}
