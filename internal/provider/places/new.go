package places

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	placesapi "google.golang.org/api/places/v1"

	"travel-assistant/internal/provider"
)

// Client is a PlaceProvider backed by the Places API text search.
type Client struct {
	service    *placesapi.Service
	language   string
	maxResults int
}

var _ provider.PlaceProvider = (*Client)(nil)

// New creates a Places client authenticated with the configured API key.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	svc, err := placesapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("places: failed to create service: %w", err)
	}
	return &Client{service: svc, language: cfg.Language, maxResults: cfg.MaxResults}, nil
}
