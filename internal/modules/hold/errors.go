package hold

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("hold not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrBlocked          = errors.New("requested date/slot cannot be held")
)
