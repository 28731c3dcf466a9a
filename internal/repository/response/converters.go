package response

import "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"

func ToDomain(r *ResponseDB) *entities.AgentOrderResponse {
	if r == nil {
		return nil
	}
	return &entities.AgentOrderResponse{
		ID:              r.ID,
		OrderID:         r.OrderID,
		AgentID:         r.AgentID,
		Action:          entities.ResponseActionType(r.Action),
		ProposedFee:     r.ProposedFee,
		ResponseMessage: r.ResponseMessage,
		CreatedAt:       r.CreatedAt,
	}
}

func ToDomainList(responses []ResponseDB) []entities.AgentOrderResponse {
	result := make([]entities.AgentOrderResponse, 0, len(responses))
	for i := range responses {
		result = append(result, *ToDomain(&responses[i]))
	}
	return result
}
