package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

// Order — единая точка доступа к записям заказов.
// Поля статуса и назначения через неё не изменяются, ими владеют
// сервисы dispatch и status.
type Order struct {
	repository Repository
}

func New(repository Repository) *Order {
	return &Order{
		repository: repository,
	}
}

func (s *Order) CreateOrder(ctx context.Context, spec entities.OrderSpec) (*entities.DeliveryOrder, error) {
	if !isValidActorID(spec.UserID) {
		return nil, ErrInvalidUserID
	}
	if !isValidEndpoint(spec.Pickup) || !isValidEndpoint(spec.Delivery) {
		return nil, ErrInvalidEndpoint
	}
	if spec.DistanceKm <= 0 {
		return nil, ErrInvalidDistance
	}

	urgency := spec.Urgency
	if urgency == "" {
		urgency = entities.DefaultUrgencyType
	}
	if !isValidUrgency(urgency) {
		return nil, ErrMissingRequiredFields
	}

	orderEntity := &entities.DeliveryOrder{
		ID:                 uuid.NewString(),
		UserID:             spec.UserID,
		PreferredAgentID:   spec.PreferredAgentID,
		Pickup:             spec.Pickup,
		Delivery:           spec.Delivery,
		WeightKg:           spec.WeightKg,
		IsFragile:          spec.IsFragile,
		PackageDescription: spec.PackageDescription,
		DistanceKm:         spec.DistanceKm,
		TotalFee:           spec.TotalFee,
		PromoCode:          spec.PromoCode,
		Status:             entities.OrderPending,
		Urgency:            urgency,
		CreatedAt:          time.Now().UTC(),
	}

	created, err := s.repository.Create(ctx, orderEntity)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.DeliveryOrder, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) ListOrdersForUser(ctx context.Context, userID string) ([]entities.DeliveryOrder, error) {
	if !isValidActorID(userID) {
		return nil, ErrInvalidUserID
	}

	orders, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders for user: %w", err)
	}

	return orders, nil
}

func (s *Order) ListOrdersForAgent(ctx context.Context, agentID string, statusFilter *entities.OrderStatusType) ([]entities.DeliveryOrder, error) {
	if !isValidActorID(agentID) {
		return nil, ErrInvalidAgentID
	}
	if statusFilter != nil && !isValidStatus(statusFilter.String()) {
		return nil, ErrInvalidStatusFilter
	}

	orders, err := s.repository.ListByAgent(ctx, agentID, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("list orders for agent: %w", err)
	}

	return orders, nil
}

func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.DeliveryOrder, error) {
	if orderModify.ID == nil || !isValidOrderID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}
	if orderModify.DeliveryNotes == nil &&
		orderModify.EstimatedDeliveryTime == nil &&
		orderModify.PromoCode == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return updated, nil
}
