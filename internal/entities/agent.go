package entities

import (
	"time"
)

type DeliveryAgent struct {
	ID              string
	UserID          string
	AgentCode       string
	FullName        string
	Phone           string
	Email           string
	AvatarURL       string
	VehicleType     AgentVehicleType
	ServiceAreaID   *string
	IsVerified      bool
	IsActive        bool
	Rating          float64
	TotalDeliveries int64
	TotalEarnings   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AgentVehicleType string

const (
	VehicleBike AgentVehicleType = "bike"
	VehicleCar  AgentVehicleType = "car"
	VehicleFoot AgentVehicleType = "foot"
)

const DefaultVehicleType = VehicleBike

func (t AgentVehicleType) String() string {
	return string(t)
}

type AgentModify struct {
	ID            *string
	FullName      *string
	Phone         *string
	Email         *string
	AvatarURL     *string
	VehicleType   *AgentVehicleType
	ServiceAreaID *string
	IsVerified    *bool
	IsActive      *bool
}
