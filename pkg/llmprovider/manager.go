package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-assistant/pkg/log"
)

// MaxAttemptsPerProvider caps RetryAttempts: a generation call is retried at most once.
const MaxAttemptsPerProvider = 2

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

var _ TextGenerator = (*Manager)(nil)

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateText sends prompt as a single user message and returns the generated text.
func (m *Manager) GenerateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrInvalidRequest
	}

	resp, err := m.GenerateContent(ctx, &Request{
		Messages:    []Message{UserMessage(prompt)},
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Provider: resp.ProviderName, Err: ErrEmptyResponse}
	}
	return text, nil
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation aborted after trying %d provider(s): %w", i, err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) attempts() int {
	n := m.config.RetryAttempts
	if n < 1 {
		return 1
	}
	if n > MaxAttemptsPerProvider {
		return MaxAttemptsPerProvider
	}
	return n
}

// generateWithRetry retries with linear backoff, never past MaxAttemptsPerProvider
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.attempts(); attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// a cancelled caller is not retried
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
