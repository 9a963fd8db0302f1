package datemath

import "errors"

var (
	ErrEmptyInput   = errors.New("date input is empty")
	ErrUnrecognized = errors.New("unrecognized date format")
)
