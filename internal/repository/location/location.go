package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/feed"
)

// Хранится только последняя точка агента по каждому заказу,
// upsert по order_id. История пингов не нужна.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Upsert(ctx context.Context, ping entities.LocationPing) (*entities.LocationPing, error) {
	query := `
		INSERT INTO location_pings (order_id, agent_id, lat, lng, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO UPDATE
		SET agent_id = EXCLUDED.agent_id,
		    lat = EXCLUDED.lat,
		    lng = EXCLUDED.lng,
		    recorded_at = EXCLUDED.recorded_at
		RETURNING order_id, agent_id, lat, lng, recorded_at`

	var pingModel entities.LocationPing
	err := r.querier.QueryRow(
		ctx,
		query,
		ping.OrderID,
		ping.AgentID,
		ping.Lat,
		ping.Lng,
		ping.RecordedAt,
	).Scan(
		&pingModel.OrderID,
		&pingModel.AgentID,
		&pingModel.Lat,
		&pingModel.Lng,
		&pingModel.RecordedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, feed.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected location repository upsert error: %w", err)
	}

	return &pingModel, nil
}

func (r *Repository) GetByOrder(ctx context.Context, orderID string) (*entities.LocationPing, error) {
	query := `
		SELECT order_id, agent_id, lat, lng, recorded_at
		FROM location_pings
		WHERE order_id = $1`

	var pingModel entities.LocationPing
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&pingModel.OrderID,
		&pingModel.AgentID,
		&pingModel.Lat,
		&pingModel.Lng,
		&pingModel.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, feed.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected location repository get error: %w", err)
	}

	return &pingModel, nil
}
