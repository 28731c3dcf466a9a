package dispatch

import "errors"

var (
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidAgentID        = errors.New("invalid agent id")
	ErrInvalidResponseAction = errors.New("invalid response action")
	ErrProposedFeeRequired   = errors.New("counter offer requires a proposed fee")

	ErrNoFreeAgent           = errors.New("no free agent available")
	ErrAgentNotEligible      = errors.New("agent is not active and verified")
	ErrInvalidTransition     = errors.New("order is not pending")
	ErrConflictingAssignment = errors.New("assignment lost to a concurrent attempt")
)
