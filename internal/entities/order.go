package entities

import (
	"time"
)

type OrderStatusType string

const (
	OrderPending       OrderStatusType = "pending"
	OrderAgentAssigned OrderStatusType = "agent_assigned"
	OrderPickedUp      OrderStatusType = "picked_up"
	OrderInTransit     OrderStatusType = "in_transit"
	OrderDelivered     OrderStatusType = "delivered"
	OrderCancelled     OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanAdvanceTo проверяет легальность перехода статуса.
// Разрешена только прямая цепочка без пропусков, cancelled достижим только из pending.
func (s OrderStatusType) CanAdvanceTo(next OrderStatusType) bool {
	switch s {
	case OrderPending:
		return next == OrderAgentAssigned || next == OrderCancelled
	case OrderAgentAssigned:
		return next == OrderPickedUp
	case OrderPickedUp:
		return next == OrderInTransit
	case OrderInTransit:
		return next == OrderDelivered
	default:
		return false
	}
}

type OrderUrgencyType string

const (
	UrgencyNormal OrderUrgencyType = "normal"
	UrgencyUrgent OrderUrgencyType = "urgent"
)

const DefaultUrgencyType = UrgencyNormal

func (u OrderUrgencyType) String() string {
	return string(u)
}

// Endpoint — точка забора или вручения заказа.
type Endpoint struct {
	Address      string
	ContactName  string
	ContactPhone string
}

type DeliveryOrder struct {
	ID                    string
	UserID                string
	AssignedAgentID       *string
	PreferredAgentID      *string
	Pickup                Endpoint
	Delivery              Endpoint
	WeightKg              float64
	IsFragile             bool
	PackageDescription    string
	DistanceKm            float64
	TotalFee              float64
	AgentAdjustedFee      *float64
	FeeAdjustmentReason   string
	PromoCode             string
	Status                OrderStatusType
	Urgency               OrderUrgencyType
	CreatedAt             time.Time
	PickupTime            *time.Time
	DeliveryTime          *time.Time
	EstimatedDeliveryTime *time.Time
	DeliveryNotes         string
	ProofOfDeliveryImages []string
}

// EffectiveFee возвращает авторитетную стоимость доставки:
// контр-оффер агента, если он был, иначе системную.
func (o *DeliveryOrder) EffectiveFee() float64 {
	if o.AgentAdjustedFee != nil {
		return *o.AgentAdjustedFee
	}
	return o.TotalFee
}

type OrderModify struct {
	ID                    *string
	DeliveryNotes         *string
	EstimatedDeliveryTime *time.Time
	PromoCode             *string
}

// StatusStamp — побочные записи перехода статуса, применяются
// той же условной записью, что и сам переход.
type StatusStamp struct {
	PickupTime    *time.Time
	DeliveryTime  *time.Time
	DeliveryNotes *string
	ProofImages   []string
}

// OrderSpec — заявка на создание заказа от покупателя.
type OrderSpec struct {
	UserID             string
	PreferredAgentID   *string
	Pickup             Endpoint
	Delivery           Endpoint
	WeightKg           float64
	IsFragile          bool
	PackageDescription string
	DistanceKm         float64
	TotalFee           float64
	PromoCode          string
	Urgency            OrderUrgencyType
}
