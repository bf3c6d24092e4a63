package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyQuery    = errors.New("search query cannot be empty")
	ErrInvalidFormat = errors.New("unsupported export format")
	ErrDocNotFound   = errors.New("linked document not found")
)
