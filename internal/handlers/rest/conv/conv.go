// Package conv собирает DTO ответов из доменных сущностей. Общий для
// всех REST-пакетов, чтобы поля заказа маппились в одном месте.
package conv

import (
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
)

func ToOrderDTO(o *entities.DeliveryOrder) dto.Order {
	return dto.Order{
		ID:               o.ID,
		UserID:           o.UserID,
		AssignedAgentID:  o.AssignedAgentID,
		PreferredAgentID: o.PreferredAgentID,
		Pickup: dto.Endpoint{
			Address:      o.Pickup.Address,
			ContactName:  o.Pickup.ContactName,
			ContactPhone: o.Pickup.ContactPhone,
		},
		Delivery: dto.Endpoint{
			Address:      o.Delivery.Address,
			ContactName:  o.Delivery.ContactName,
			ContactPhone: o.Delivery.ContactPhone,
		},
		WeightKg:              o.WeightKg,
		IsFragile:             o.IsFragile,
		PackageDescription:    o.PackageDescription,
		DistanceKm:            o.DistanceKm,
		TotalFee:              o.TotalFee,
		AgentAdjustedFee:      o.AgentAdjustedFee,
		EffectiveFee:          o.EffectiveFee(),
		FeeAdjustmentReason:   o.FeeAdjustmentReason,
		PromoCode:             o.PromoCode,
		Status:                o.Status.String(),
		Urgency:               o.Urgency.String(),
		CreatedAt:             o.CreatedAt,
		PickupTime:            o.PickupTime,
		DeliveryTime:          o.DeliveryTime,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		DeliveryNotes:         o.DeliveryNotes,
		ProofOfDeliveryImages: o.ProofOfDeliveryImages,
	}
}

func ToOrderDTOList(orders []entities.DeliveryOrder) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for i := range orders {
		result = append(result, ToOrderDTO(&orders[i]))
	}
	return result
}

func ToAgentDTO(a *entities.DeliveryAgent) dto.Agent {
	return dto.Agent{
		ID:              a.ID,
		UserID:          a.UserID,
		AgentCode:       a.AgentCode,
		FullName:        a.FullName,
		Phone:           a.Phone,
		Email:           a.Email,
		AvatarURL:       a.AvatarURL,
		VehicleType:     a.VehicleType.String(),
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

func ToAgentDTOList(agents []entities.DeliveryAgent) []dto.Agent {
	result := make([]dto.Agent, 0, len(agents))
	for i := range agents {
		result = append(result, ToAgentDTO(&agents[i]))
	}
	return result
}

func ToResponseDTO(r *entities.AgentOrderResponse) dto.AgentOrderResponse {
	return dto.AgentOrderResponse{
		ID:              r.ID,
		OrderID:         r.OrderID,
		AgentID:         r.AgentID,
		Action:          r.Action.String(),
		ProposedFee:     r.ProposedFee,
		ResponseMessage: r.ResponseMessage,
		CreatedAt:       r.CreatedAt,
	}
}

func ToResponseDTOList(responses []entities.AgentOrderResponse) []dto.AgentOrderResponse {
	result := make([]dto.AgentOrderResponse, 0, len(responses))
	for i := range responses {
		result = append(result, ToResponseDTO(&responses[i]))
	}
	return result
}
