package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// LocalDateTime marshals in the browser datetime-local layout, keeping the
// location already attached to the value.
type LocalDateTime time.Time

// MarshalJSON implements json.Marshaler for LocalDateTime.
func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(LocalDateTimeFormat))
}
