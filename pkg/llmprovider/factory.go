package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"travel-assistant/config"
	"travel-assistant/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns enabled providers sorted by ascending priority. A provider that fails to
// initialize is skipped; the error is returned only when none could be built.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var skipped []error
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(skipped))
		for i, e := range skipped {
			msgs[i] = e.Error()
		}
		return nil, skipped, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, skipped, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	httpClient := &http.Client{}
	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
		httpClient.Timeout = timeout
	}

	vendor, ok := openai.LookupVendor(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
	client, err := openai.New(vendor.Apply(openai.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL, HTTPClient: httpClient}))
	if err != nil {
		return nil, err
	}
	return NewOpenAIAdapter(vendor.Name, client), nil
}

// ManagerConfigFrom converts the string durations of config.LLMConfig.
// Empty durations stay zero.
func ManagerConfigFrom(cfg *config.LLMConfig) (*Config, error) {
	out := &Config{FallbackEnabled: cfg.FallbackEnabled, RetryAttempts: cfg.RetryAttempts}
	var err error
	if cfg.RetryDelay != "" {
		if out.RetryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("invalid retry_delay %q: %w", cfg.RetryDelay, err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if out.MaxTotalTimeout, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("invalid max_total_timeout %q: %w", cfg.MaxTotalTimeout, err)
		}
	}
	return out, nil
}
