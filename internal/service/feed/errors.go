package feed

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidAgentID    = errors.New("invalid agent id")
	ErrInvalidCoordinate = errors.New("coordinates are out of range")

	ErrOrderNotFound    = errors.New("order not found")
	ErrLocationNotFound = errors.New("no location recorded for order")
	ErrNotAssignedAgent = errors.New("actor is not the assigned agent")
	ErrOrderNotActive   = errors.New("order is not in an active delivery status")
)
