package middleware

import "time"

// Headers set by the gateway in front of the API.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUsername  = "X-Username"
	HeaderRequestID = "X-Request-ID"
)

const scopeKey = "middleware.scope"

// Rate limiter sizing
const (
	DefaultRequestsPerMin = 60
	limiterCacheSize      = 10000
	limiterTTL            = 5 * time.Minute
)

const (
	LogPrefixAuth      = "internal.middleware.Auth"
	LogPrefixRateLimit = "internal.middleware.RateLimit"
)
