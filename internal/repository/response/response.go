package response

import (
	"context"
	"fmt"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

// Репозиторий журнала переговоров. Только вставка и чтение,
// записи никогда не изменяются и не удаляются.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, responseEntity entities.AgentOrderResponse) (*entities.AgentOrderResponse, error) {
	query := `
		INSERT INTO agent_order_responses (order_id, agent_id, action, proposed_fee, response_message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_id, agent_id, action, proposed_fee, response_message, created_at`

	var responseModel ResponseDB
	err := r.querier.QueryRow(
		ctx,
		query,
		responseEntity.OrderID,
		responseEntity.AgentID,
		responseEntity.Action.String(),
		responseEntity.ProposedFee,
		responseEntity.ResponseMessage,
	).Scan(
		&responseModel.ID,
		&responseModel.OrderID,
		&responseModel.AgentID,
		&responseModel.Action,
		&responseModel.ProposedFee,
		&responseModel.ResponseMessage,
		&responseModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected response repository create error: %w", err)
	}

	return ToDomain(&responseModel), nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID string) ([]entities.AgentOrderResponse, error) {
	query := `
		SELECT id, order_id, agent_id, action, proposed_fee, response_message, created_at
		FROM agent_order_responses
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected response repository list error: %w", err)
	}
	defer rows.Close()

	responseModels := make([]ResponseDB, 0, 8)
	for rows.Next() {
		var responseModel ResponseDB
		err := rows.Scan(
			&responseModel.ID,
			&responseModel.OrderID,
			&responseModel.AgentID,
			&responseModel.Action,
			&responseModel.ProposedFee,
			&responseModel.ResponseMessage,
			&responseModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected response repository list error: %w", err)
		}
		responseModels = append(responseModels, responseModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected response repository list error: %w", err)
	}

	return ToDomainList(responseModels), nil
}
