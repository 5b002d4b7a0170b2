package provider

import "errors"

var (
	ErrUnavailable    = errors.New("provider unavailable")
	ErrInvalidOptions = errors.New("invalid search options")
)
