package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// OK writes 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error writes a 400 carrying err's message, the only error text shown to callers.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError writes 500. err is attached to the gin context for logging only.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

func Unauthorized(c *gin.Context) {
	abort(c, http.StatusUnauthorized, UnauthorizedErrorCode, "Unauthorized")
}

func TooManyRequests(c *gin.Context) {
	abort(c, http.StatusTooManyRequests, TooManyRequestsErrorCode, "Too many requests")
}

// ClientClosed is used when the caller cancelled before the answer was ready.
func ClientClosed(c *gin.Context) {
	abort(c, StatusClientClosedRequest, ClientClosedErrorCode, "Client closed request")
}

func abort(c *gin.Context, status, code int, msg string) {
	c.AbortWithStatusJSON(status, Resp{ErrorCode: code, Message: msg})
}
