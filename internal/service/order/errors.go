package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidAgentID        = errors.New("invalid agent id")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
	ErrInvalidEndpoint       = errors.New("invalid pickup or delivery endpoint")
	ErrInvalidDistance       = errors.New("invalid distance")

	ErrOrderNotFound = errors.New("order not found")
)
