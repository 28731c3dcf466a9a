package entities

import "time"

type AvailabilityStatusType string

const (
	AgentOnline  AvailabilityStatusType = "online"
	AgentBusy    AvailabilityStatusType = "busy"
	AgentOffline AvailabilityStatusType = "offline"
)

const DefaultAvailabilityStatus = AgentOffline

func (s AvailabilityStatusType) String() string {
	return string(s)
}

// AgentAvailability — самодекларируемое присутствие агента.
// Запись мутирует только сессия самого агента, остальные её лишь читают.
type AgentAvailability struct {
	AgentID    string
	Status     AvailabilityStatusType
	LastSeenAt time.Time
}
