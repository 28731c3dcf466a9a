package order

import "time"

type OrderDB struct {
	ID                    string
	UserID                string
	AssignedAgentID       *string
	PreferredAgentID      *string
	PickupAddress         string
	PickupContactName     string
	PickupContactPhone    string
	DeliveryAddress       string
	DeliveryContactName   string
	DeliveryContactPhone  string
	WeightKg              float64
	IsFragile             bool
	PackageDescription    string
	DistanceKm            float64
	TotalFee              float64
	AgentAdjustedFee      *float64
	FeeAdjustmentReason   string
	PromoCode             string
	Status                string
	Urgency               string
	CreatedAt             time.Time
	PickupTime            *time.Time
	DeliveryTime          *time.Time
	EstimatedDeliveryTime *time.Time
	DeliveryNotes         string
	ProofOfDeliveryImages []string
}

type OrderModifyDB struct {
	ID                    *string
	DeliveryNotes         *string
	EstimatedDeliveryTime *time.Time
	PromoCode             *string
}
