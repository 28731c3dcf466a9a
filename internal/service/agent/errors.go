package agent

import "errors"

var (
	ErrMissingRequiredFields     = errors.New("missing required fields")
	ErrInvalidAgentID            = errors.New("invalid agent id")
	ErrInvalidPhone              = errors.New("invalid phone")
	ErrInvalidVehicle            = errors.New("invalid vehicle type")
	ErrInvalidAvailabilityStatus = errors.New("invalid availability status")

	ErrAgentNotFound      = errors.New("agent not found")
	ErrNotOwnAvailability = errors.New("availability can only be set by the owning agent")
	ErrConflict           = errors.New("resource already exists")
)
