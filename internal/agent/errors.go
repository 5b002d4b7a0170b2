package agent

import "errors"

var (
	// ErrEmptyQuery is the only failure surfaced to callers as a rejected request.
	ErrEmptyQuery = errors.New("query is empty")

	ErrClassificationAmbiguous = errors.New("classification ambiguous")
	ErrProviderUnavailable     = errors.New("provider unavailable")
	ErrGenerationFailure       = errors.New("generation failure")
	ErrPersistenceFailure      = errors.New("persistence failure")
	ErrOwnershipViolation      = errors.New("trip not owned by caller")
	ErrHandlerNotFound         = errors.New("handler not found")
	ErrMissingUser             = errors.New("user id is required")
)
