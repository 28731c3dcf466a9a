package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, user_id, assigned_agent_id, preferred_agent_id,
		pickup_address, pickup_contact_name, pickup_contact_phone,
		delivery_address, delivery_contact_name, delivery_contact_phone,
		weight_kg, is_fragile, package_description, distance_km,
		total_fee, agent_adjusted_fee, fee_adjustment_reason, promo_code,
		status, urgency, created_at, pickup_time, delivery_time,
		estimated_delivery_time, delivery_notes, proof_of_delivery_images`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.UserID,
		&orderModel.AssignedAgentID,
		&orderModel.PreferredAgentID,
		&orderModel.PickupAddress,
		&orderModel.PickupContactName,
		&orderModel.PickupContactPhone,
		&orderModel.DeliveryAddress,
		&orderModel.DeliveryContactName,
		&orderModel.DeliveryContactPhone,
		&orderModel.WeightKg,
		&orderModel.IsFragile,
		&orderModel.PackageDescription,
		&orderModel.DistanceKm,
		&orderModel.TotalFee,
		&orderModel.AgentAdjustedFee,
		&orderModel.FeeAdjustmentReason,
		&orderModel.PromoCode,
		&orderModel.Status,
		&orderModel.Urgency,
		&orderModel.CreatedAt,
		&orderModel.PickupTime,
		&orderModel.DeliveryTime,
		&orderModel.EstimatedDeliveryTime,
		&orderModel.DeliveryNotes,
		&orderModel.ProofOfDeliveryImages,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func (r *Repository) Create(ctx context.Context, orderEntity *entities.DeliveryOrder) (*entities.DeliveryOrder, error) {
	query := `
		INSERT INTO delivery_orders (
			id, user_id, preferred_agent_id,
			pickup_address, pickup_contact_name, pickup_contact_phone,
			delivery_address, delivery_contact_name, delivery_contact_phone,
			weight_kg, is_fragile, package_description, distance_km,
			total_fee, promo_code, status, urgency, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.UserID,
		orderEntity.PreferredAgentID,
		orderEntity.Pickup.Address,
		orderEntity.Pickup.ContactName,
		orderEntity.Pickup.ContactPhone,
		orderEntity.Delivery.Address,
		orderEntity.Delivery.ContactName,
		orderEntity.Delivery.ContactPhone,
		orderEntity.WeightKg,
		orderEntity.IsFragile,
		orderEntity.PackageDescription,
		orderEntity.DistanceKm,
		orderEntity.TotalFee,
		orderEntity.PromoCode,
		orderEntity.Status.String(),
		orderEntity.Urgency.String(),
		orderEntity.CreatedAt,
	)

	orderModel, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("order repository create: duplicate order id %s: %w", orderEntity.ID, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.DeliveryOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return r.queryList(ctx, query, userID)
}

func (r *Repository) ListByAgent(ctx context.Context, agentID string, statusFilter *entities.OrderStatusType) ([]entities.DeliveryOrder, error) {
	builder := qb.
		Select(orderColumns).
		From("delivery_orders").
		Where(sq.Eq{"assigned_agent_id": agentID}).
		OrderBy("created_at DESC")

	if statusFilter != nil {
		builder = builder.Where(sq.Eq{"status": statusFilter.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listbyagent error: %w", err)
	}

	return r.queryList(ctx, query, args...)
}

func (r *Repository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]entities.DeliveryOrder, error) {
	query := `SELECT ` + orderColumns + `
		FROM delivery_orders
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at`

	return r.queryList(ctx, query, cutoff)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.DeliveryOrder, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("delivery_orders")

	// опциональные поля
	if orderModifyModel.DeliveryNotes != nil {
		builder = builder.Set("delivery_notes", orderModifyModel.DeliveryNotes)
	}
	if orderModifyModel.EstimatedDeliveryTime != nil {
		builder = builder.Set("estimated_delivery_time", orderModifyModel.EstimatedDeliveryTime)
	}
	if orderModifyModel.PromoCode != nil {
		builder = builder.Set("promo_code", orderModifyModel.PromoCode)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// AssignIfPending — единственная точка записи назначения. Условие по
// статусу прямо в запросе, из конкурентных попыток строку получит одна.
func (r *Repository) AssignIfPending(ctx context.Context, orderID, agentID string, adjustedFee *float64, adjustmentReason *string) (*entities.DeliveryOrder, error) {
	builder := qb.
		Update("delivery_orders").
		Set("status", entities.OrderAgentAssigned.String()).
		Set("assigned_agent_id", agentID)

	if adjustedFee != nil {
		builder = builder.Set("agent_adjusted_fee", adjustedFee)
	}
	if adjustmentReason != nil {
		builder = builder.Set("fee_adjustment_reason", adjustmentReason)
	}

	builder = builder.
		Where(sq.Eq{"id": orderID, "status": entities.OrderPending.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository assign error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// заказ отсутствует либо уже не pending, различает сервис
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository assign error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// AdvanceStatusIf применяет переход и его штампы одной условной записью.
func (r *Repository) AdvanceStatusIf(ctx context.Context, orderID string, from, to entities.OrderStatusType, stamp entities.StatusStamp) (*entities.DeliveryOrder, error) {
	builder := qb.
		Update("delivery_orders").
		Set("status", to.String())

	if stamp.PickupTime != nil {
		builder = builder.Set("pickup_time", stamp.PickupTime)
	}
	if stamp.DeliveryTime != nil {
		builder = builder.Set("delivery_time", stamp.DeliveryTime)
	}
	if stamp.DeliveryNotes != nil {
		builder = builder.Set("delivery_notes", stamp.DeliveryNotes)
	}
	if len(stamp.ProofImages) > 0 {
		builder = builder.Set("proof_of_delivery_images", sq.Expr("proof_of_delivery_images || ?", stamp.ProofImages))
	}

	builder = builder.
		Where(sq.Eq{"id": orderID, "status": from.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository advance error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository advance error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) CancelIfPending(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	query := `
		UPDATE delivery_orders
		SET status = 'cancelled'
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.DeliveryOrder, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
