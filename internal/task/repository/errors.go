package repository

import "errors"

var (
	ErrFailedToLoad    = errors.New("failed to load tasks")
	ErrFailedToSave    = errors.New("failed to save tasks")
	ErrCorruptSnapshot = errors.New("stored task snapshot is not valid JSON")
)
