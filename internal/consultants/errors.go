package consultants

import "errors"

var (
	ErrNotFound     = errors.New("consultant not found")
	ErrInvalidInput = errors.New("invalid input")
)
