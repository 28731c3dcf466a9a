package agent

import (
	"github.com/AlekSi/pointer"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

func ToDomain(a *AgentDB) *entities.DeliveryAgent {
	if a == nil {
		return nil
	}
	return &entities.DeliveryAgent{
		ID:              a.ID,
		UserID:          a.UserID,
		AgentCode:       a.AgentCode,
		FullName:        a.FullName,
		Phone:           a.Phone,
		Email:           a.Email,
		AvatarURL:       a.AvatarURL,
		VehicleType:     entities.AgentVehicleType(a.VehicleType),
		ServiceAreaID:   a.ServiceAreaID,
		IsVerified:      a.IsVerified,
		IsActive:        a.IsActive,
		Rating:          a.Rating,
		TotalDeliveries: a.TotalDeliveries,
		TotalEarnings:   a.TotalEarnings,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func ToDomainList(agents []AgentDB) []entities.DeliveryAgent {
	result := make([]entities.DeliveryAgent, 0, len(agents))
	for i := range agents {
		result = append(result, *ToDomain(&agents[i]))
	}
	return result
}

func FromDomainModify(a *entities.AgentModify) *AgentModifyDB {
	if a == nil {
		return nil
	}
	agentModifyDB := &AgentModifyDB{}

	if a.ID != nil {
		agentModifyDB.ID = a.ID
	}
	if a.FullName != nil {
		agentModifyDB.FullName = a.FullName
	}
	if a.Phone != nil {
		agentModifyDB.Phone = a.Phone
	}
	if a.Email != nil {
		agentModifyDB.Email = a.Email
	}
	if a.AvatarURL != nil {
		agentModifyDB.AvatarURL = a.AvatarURL
	}
	if a.VehicleType != nil {
		agentModifyDB.VehicleType = pointer.To(a.VehicleType.String())
	}
	if a.ServiceAreaID != nil {
		agentModifyDB.ServiceAreaID = a.ServiceAreaID
	}
	if a.IsVerified != nil {
		agentModifyDB.IsVerified = a.IsVerified
	}
	if a.IsActive != nil {
		agentModifyDB.IsActive = a.IsActive
	}

	return agentModifyDB
}

func ToAvailabilityDomain(a *AvailabilityDB) *entities.AgentAvailability {
	if a == nil {
		return nil
	}
	return &entities.AgentAvailability{
		AgentID:    a.AgentID,
		Status:     entities.AvailabilityStatusType(a.Status),
		LastSeenAt: a.LastSeenAt,
	}
}
