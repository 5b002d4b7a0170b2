package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope every endpoint answers with. ErrorCode 0 means success.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// DateTime renders a stored turn timestamp in UTC with millisecond precision,
// so listings read back identically from every store driver.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
