package response

import "time"

type ResponseDB struct {
	ID              int64
	OrderID         string
	AgentID         string
	Action          string
	ProposedFee     *float64
	ResponseMessage *string
	CreatedAt       time.Time
}
