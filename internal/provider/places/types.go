package places

import (
	"fmt"
	"net/http"

	"travel-assistant/internal/provider"
)

const (
	DefaultLanguage   = "zh-CN"
	DefaultMaxResults = 10

	includedTypeRestaurant = "restaurant"
	defaultActivityQuery   = "tourist attractions"
)

// fieldMask lists the place fields read by this client. The API rejects
// searchText calls without one.
const fieldMask = "places.id,places.displayName,places.formattedAddress,places.rating," +
	"places.priceLevel,places.types,places.currentOpeningHours.openNow"

// Config holds Places client configuration
type Config struct {
	APIKey     string
	Endpoint   string // overrides https://places.googleapis.com/ when set
	Language   string
	MaxResults int
	HTTPClient *http.Client // optional, replaces the default transport
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("places: APIKey is required")
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	return nil
}

// priceLevels maps the API's enum onto the 0-4 scale of provider options.
var priceLevels = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// budgetPriceLevels narrows restaurant searches by budget tier.
var budgetPriceLevels = map[string][]string{
	provider.BudgetLow:  {"PRICE_LEVEL_INEXPENSIVE", "PRICE_LEVEL_MODERATE"},
	provider.BudgetHigh: {"PRICE_LEVEL_EXPENSIVE", "PRICE_LEVEL_VERY_EXPENSIVE"},
}
