package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	// DateTimeFormat renders instants with millisecond precision.
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)

// Error codes carried in Resp.ErrorCode.
const (
	ValidationErrorCode      = 1
	UnauthorizedErrorCode    = 401
	TooManyRequestsErrorCode = 429
	ClientClosedErrorCode    = 499
	InternalServerErrorCode  = 500
)

// StatusClientClosedRequest is the non-standard status used when the caller went away.
const StatusClientClosedRequest = 499
