package kvstore

import "errors"

var (
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrInvalidKey    = errors.New("invalid storage key")
)
