package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvidersConfigured = errors.New("llm: no providers configured")
	ErrAllProvidersFailed    = errors.New("llm: every provider in the chain failed")
	// ErrInvalidRequest is returned for a blank prompt before any provider is called.
	ErrInvalidRequest = errors.New("llm: blank prompt")
	ErrEmptyResponse  = errors.New("llm: provider returned no text")
)

// ProviderError records which provider of the fallback chain produced Err.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider %q: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
