package status

import "errors"

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidAgentID     = errors.New("invalid agent id")
	ErrInvalidTargetState = errors.New("target status is not reachable by agents")

	ErrInvalidTransition  = errors.New("illegal status transition")
	ErrNotAssignedAgent   = errors.New("actor is not the assigned agent")
	ErrProofRequired      = errors.New("delivery requires at least one proof image")
	ErrStorageUnavailable = errors.New("blob storage unavailable")
	ErrOrderNotFound      = errors.New("order not found")
)
