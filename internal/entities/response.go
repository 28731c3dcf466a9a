package entities

import "time"

type ResponseActionType string

const (
	ResponseAccepted     ResponseActionType = "accepted"
	ResponseCounterOffer ResponseActionType = "counter_offer"
	ResponseDeclined     ResponseActionType = "declined"
)

func (a ResponseActionType) String() string {
	return string(a)
}

// AgentOrderResponse — append-only запись решения агента по заказу.
// Пишется один раз и никогда не изменяется, образует аудит переговоров
// независимо от текущих полей заказа.
type AgentOrderResponse struct {
	ID              int64
	OrderID         string
	AgentID         string
	Action          ResponseActionType
	ProposedFee     *float64
	ResponseMessage *string
	CreatedAt       time.Time
}
