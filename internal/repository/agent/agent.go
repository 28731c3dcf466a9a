package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/agent"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const agentColumns = `id, user_id, agent_code, full_name, phone, email, avatar_url,
		vehicle_type, service_area_id, is_verified, is_active,
		rating, total_deliveries, total_earnings, created_at, updated_at`

// activeOrderStatuses — статусы, в которых заказ занимает агента.
const activeOrderStatuses = `('agent_assigned', 'picked_up', 'in_transit')`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanAgent(row pgx.Row) (*AgentDB, error) {
	var agentModel AgentDB
	err := row.Scan(
		&agentModel.ID,
		&agentModel.UserID,
		&agentModel.AgentCode,
		&agentModel.FullName,
		&agentModel.Phone,
		&agentModel.Email,
		&agentModel.AvatarURL,
		&agentModel.VehicleType,
		&agentModel.ServiceAreaID,
		&agentModel.IsVerified,
		&agentModel.IsActive,
		&agentModel.Rating,
		&agentModel.TotalDeliveries,
		&agentModel.TotalEarnings,
		&agentModel.CreatedAt,
		&agentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &agentModel, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryAgent, error) {
	query := `SELECT ` + agentColumns + `
		FROM delivery_agents
		WHERE id = $1`

	agentModel, err := scanAgent(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository getbyid error: %w", err)
	}

	return ToDomain(agentModel), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error) {
	query := `SELECT ` + agentColumns + `
		FROM delivery_agents
		WHERE user_id = $1`

	agentModel, err := scanAgent(r.querier.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository getbyuserid error: %w", err)
	}

	return ToDomain(agentModel), nil
}

func (r *Repository) ListEligible(ctx context.Context, serviceAreaID *string) ([]entities.DeliveryAgent, error) {
	builder := qb.
		Select(agentColumns).
		From("delivery_agents").
		Where(sq.Eq{"is_active": true, "is_verified": true}).
		OrderBy("id")

	if serviceAreaID != nil {
		builder = builder.Where(sq.Eq{"service_area_id": serviceAreaID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository listeligible error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository listeligible error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		agentModel, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected agent repository listeligible error: %w", err)
		}
		agentModels = append(agentModels, *agentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository listeligible error: %w", err)
	}

	return ToDomainList(agentModels), nil
}

// PickFreeAgent — первый по реестру активный верифицированный агент
// online и без заказов в работе. Порядок детерминированный.
func (r *Repository) PickFreeAgent(ctx context.Context) (*entities.DeliveryAgent, error) {
	query := `
		SELECT a.id, a.user_id, a.agent_code, a.full_name, a.phone, a.email, a.avatar_url,
		       a.vehicle_type, a.service_area_id, a.is_verified, a.is_active,
		       a.rating, a.total_deliveries, a.total_earnings, a.created_at, a.updated_at
		FROM delivery_agents a
		JOIN agent_availability av ON av.agent_id = a.id
		WHERE a.is_active = TRUE
		  AND a.is_verified = TRUE
		  AND av.status = 'online'
		  AND NOT EXISTS (
			SELECT 1
			FROM delivery_orders o
			WHERE o.assigned_agent_id = a.id
			  AND o.status IN ` + activeOrderStatuses + `
		  )
		ORDER BY a.id
		LIMIT 1`

	agentModel, err := scanAgent(r.querier.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrNoFreeAgent
		}
		return nil, fmt.Errorf("unexpected agent repository pick free agent error: %w", err)
	}

	return ToDomain(agentModel), nil
}

func (r *Repository) Update(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.DeliveryAgent, error) {
	agentModifyModel := FromDomainModify(&agentModifyEntity)

	builder := qb.
		Update("delivery_agents")

	// опциональные поля
	if agentModifyModel.FullName != nil {
		builder = builder.Set("full_name", agentModifyModel.FullName)
	}
	if agentModifyModel.Phone != nil {
		builder = builder.Set("phone", agentModifyModel.Phone)
	}
	if agentModifyModel.Email != nil {
		builder = builder.Set("email", agentModifyModel.Email)
	}
	if agentModifyModel.AvatarURL != nil {
		builder = builder.Set("avatar_url", agentModifyModel.AvatarURL)
	}
	if agentModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", agentModifyModel.VehicleType)
	}
	if agentModifyModel.ServiceAreaID != nil {
		builder = builder.Set("service_area_id", agentModifyModel.ServiceAreaID)
	}
	if agentModifyModel.IsVerified != nil {
		builder = builder.Set("is_verified", agentModifyModel.IsVerified)
	}
	if agentModifyModel.IsActive != nil {
		builder = builder.Set("is_active", agentModifyModel.IsActive)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": agentModifyModel.ID}).
		Suffix("RETURNING " + agentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	agentModel, err := scanAgent(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, agent.ErrConflict
		}

		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	return ToDomain(agentModel), nil
}

// IncrementDeliveryStats — атомарный инкремент агрегатов прямо в SQL,
// без read-modify-write, конкурентные завершения не теряют дельты.
func (r *Repository) IncrementDeliveryStats(ctx context.Context, agentID string, earnedFee float64) (*entities.DeliveryAgent, error) {
	query := `
		UPDATE delivery_agents
		SET total_deliveries = total_deliveries + 1,
		    total_earnings = total_earnings + $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + agentColumns

	agentModel, err := scanAgent(r.querier.QueryRow(ctx, query, agentID, earnedFee))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository increment stats error: %w", err)
	}

	return ToDomain(agentModel), nil
}

func (r *Repository) SetAvailability(ctx context.Context, agentID string, status entities.AvailabilityStatusType, seenAt time.Time) (*entities.AgentAvailability, error) {
	query := `
		INSERT INTO agent_availability (agent_id, status, last_seen_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (agent_id) DO UPDATE
		SET status = EXCLUDED.status,
		    last_seen_at = EXCLUDED.last_seen_at
		RETURNING agent_id, status, last_seen_at`

	var availabilityModel AvailabilityDB
	err := r.querier.QueryRow(ctx, query, agentID, status.String(), seenAt).Scan(
		&availabilityModel.AgentID,
		&availabilityModel.Status,
		&availabilityModel.LastSeenAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository set availability error: %w", err)
	}

	return ToAvailabilityDomain(&availabilityModel), nil
}

func (r *Repository) GetAvailability(ctx context.Context, agentID string) (*entities.AgentAvailability, error) {
	query := `
		SELECT agent_id, status, last_seen_at
		FROM agent_availability
		WHERE agent_id = $1`

	var availabilityModel AvailabilityDB
	err := r.querier.QueryRow(ctx, query, agentID).Scan(
		&availabilityModel.AgentID,
		&availabilityModel.Status,
		&availabilityModel.LastSeenAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// агент ещё ни разу не выходил на линию
			return &entities.AgentAvailability{
				AgentID: agentID,
				Status:  entities.DefaultAvailabilityStatus,
			}, nil
		}
		return nil, fmt.Errorf("unexpected agent repository get availability error: %w", err)
	}

	return ToAvailabilityDomain(&availabilityModel), nil
}

func (r *Repository) CountActiveOrders(ctx context.Context, agentID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM delivery_orders
		WHERE assigned_agent_id = $1
		  AND status IN ` + activeOrderStatuses

	var count int64
	err := r.querier.QueryRow(ctx, query, agentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected agent repository count active orders error: %w", err)
	}

	return count, nil
}
