package admin

import "errors"

var (
	ErrConfirmationRequired = errors.New("delete must be confirmed")
	ErrMissingID            = errors.New("id is required")
	ErrInvalidID            = errors.New("id must be a uuid")
)
