package agent

import "time"

type AgentDB struct {
	ID              string
	UserID          string
	AgentCode       string
	FullName        string
	Phone           string
	Email           string
	AvatarURL       string
	VehicleType     string
	ServiceAreaID   *string
	IsVerified      bool
	IsActive        bool
	Rating          float64
	TotalDeliveries int64
	TotalEarnings   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AgentModifyDB struct {
	ID            *string
	FullName      *string
	Phone         *string
	Email         *string
	AvatarURL     *string
	VehicleType   *string
	ServiceAreaID *string
	IsVerified    *bool
	IsActive      *bool
}

type AvailabilityDB struct {
	AgentID    string
	Status     string
	LastSeenAt time.Time
}
