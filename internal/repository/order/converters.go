package order

import "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"

func ToDomain(o *OrderDB) *entities.DeliveryOrder {
	if o == nil {
		return nil
	}
	return &entities.DeliveryOrder{
		ID:               o.ID,
		UserID:           o.UserID,
		AssignedAgentID:  o.AssignedAgentID,
		PreferredAgentID: o.PreferredAgentID,
		Pickup: entities.Endpoint{
			Address:      o.PickupAddress,
			ContactName:  o.PickupContactName,
			ContactPhone: o.PickupContactPhone,
		},
		Delivery: entities.Endpoint{
			Address:      o.DeliveryAddress,
			ContactName:  o.DeliveryContactName,
			ContactPhone: o.DeliveryContactPhone,
		},
		WeightKg:              o.WeightKg,
		IsFragile:             o.IsFragile,
		PackageDescription:    o.PackageDescription,
		DistanceKm:            o.DistanceKm,
		TotalFee:              o.TotalFee,
		AgentAdjustedFee:      o.AgentAdjustedFee,
		FeeAdjustmentReason:   o.FeeAdjustmentReason,
		PromoCode:             o.PromoCode,
		Status:                entities.OrderStatusType(o.Status),
		Urgency:               entities.OrderUrgencyType(o.Urgency),
		CreatedAt:             o.CreatedAt,
		PickupTime:            o.PickupTime,
		DeliveryTime:          o.DeliveryTime,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		DeliveryNotes:         o.DeliveryNotes,
		ProofOfDeliveryImages: o.ProofOfDeliveryImages,
	}
}

func ToDomainList(orders []OrderDB) []entities.DeliveryOrder {
	result := make([]entities.DeliveryOrder, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{}

	if o.ID != nil {
		orderModifyDB.ID = o.ID
	}
	if o.DeliveryNotes != nil {
		orderModifyDB.DeliveryNotes = o.DeliveryNotes
	}
	if o.EstimatedDeliveryTime != nil {
		orderModifyDB.EstimatedDeliveryTime = o.EstimatedDeliveryTime
	}
	if o.PromoCode != nil {
		orderModifyDB.PromoCode = o.PromoCode
	}

	return orderModifyDB
}
