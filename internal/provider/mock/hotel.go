package mock

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"travel-assistant/internal/provider"
)

type hotelSeed struct {
	id, name, kind, address string
	rating, price           float64
	amenities               []string
	description             string
}

func hotelSeeds(destination string) []hotelSeed {
	return []hotelSeed{
		{"H001", "豪华大酒店", HotelTypeHotel, destination + "市中心区豪华路1号", 4.7, 880,
			[]string{"免费WiFi", "游泳池", "健身中心", "餐厅", "停车场"}, "位于市中心的豪华五星级酒店，提供一流的服务和设施。"},
		{"H002", "商务酒店", HotelTypeHotel, destination + "商务区商务路88号", 4.2, 460,
			[]string{"免费WiFi", "商务中心", "餐厅", "停车场"}, "为商务旅客提供舒适便捷的住宿体验。"},
		{"H003", "温馨家庭民宿", HotelTypeHomestay, destination + "文化区文艺路12号", 4.8, 320,
			[]string{"免费WiFi", "厨房", "洗衣机", "阳台"}, "温馨舒适的家庭民宿，让您感受当地生活。"},
		{"H004", "现代服务公寓", HotelTypeApartment, destination + "新区科技路56号", 4.5, 650,
			[]string{"免费WiFi", "厨房", "洗衣机", "健身中心", "停车场"}, "现代化服务公寓，适合长期居住。"},
	}
}

// SearchHotels returns the hotels at destination, filtered by opt.Type.
// An empty type or 所有 returns every kind.
func (p *Provider) SearchHotels(ctx context.Context, opt provider.SearchHotelsOptions) ([]provider.HotelOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opt.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", provider.ErrInvalidOptions)
	}

	seeds := lo.Filter(hotelSeeds(opt.Destination), func(s hotelSeed, _ int) bool {
		return opt.Type == "" || opt.Type == HotelTypeAll || opt.Type == s.kind
	})
	return lo.Map(seeds, func(s hotelSeed, _ int) provider.HotelOption {
		return provider.HotelOption{
			ID:          s.id,
			Name:        s.name,
			Type:        s.kind,
			Address:     s.address,
			Rating:      s.rating,
			Price:       s.price,
			Currency:    CurrencyCNY,
			Amenities:   s.amenities,
			Description: s.description,
			Available:   true,
		}
	}), nil
}
