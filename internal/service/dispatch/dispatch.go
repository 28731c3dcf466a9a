package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/order"
)

// Dispatch связывает pending-заказы с агентами: автоматический подбор,
// ручное назначение администратором и ответы самих агентов
// (accept / counter_offer / decline). Все пути назначения проходят через
// условную запись AssignIfPending, поэтому из гонки победитель ровно один.
type Dispatch struct {
	orderRepository    OrderRepository
	agentRepository    AgentRepository
	responseRepository ResponseRepository
	txManager          TxManager
}

func New(
	orderRepository OrderRepository,
	agentRepository AgentRepository,
	responseRepository ResponseRepository,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		orderRepository:    orderRepository,
		agentRepository:    agentRepository,
		responseRepository: responseRepository,
		txManager:          txManager,
	}
}

// AssignmentRequest — ручное назначение администратором,
// с необязательной корректировкой стоимости.
type AssignmentRequest struct {
	OrderID          string
	AgentID          string
	AdjustedFee      *float64
	AdjustmentReason *string
}

// RespondRequest — решение агента по pending-заказу.
type RespondRequest struct {
	OrderID     string
	AgentID     string
	Action      entities.ResponseActionType
	ProposedFee *float64
	Message     *string
}

// AutoAssign подбирает первого свободного агента в порядке реестра.
// Подбор намеренно без весов справедливости или близости: first-match
// детерминирован и на него опирается наблюдаемое поведение.
func (d *Dispatch) AutoAssign(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var assigned *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := d.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if orderEntity.Status != entities.OrderPending {
			return fmt.Errorf("order %s is %s: %w", orderID, orderEntity.Status, ErrInvalidTransition)
		}

		agentEntity, err := d.agentRepository.PickFreeAgent(ctx)
		if err != nil {
			return fmt.Errorf("pick free agent: %w", err)
		}

		assigned, err = d.assignPending(ctx, orderID, agentEntity.ID, nil, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// Assign — ручной путь администратора. С точки зрения состояния заказа
// эквивалентен accept агента, переговорный итог фиксируется в журнале.
func (d *Dispatch) Assign(ctx context.Context, request AssignmentRequest) (*entities.DeliveryOrder, error) {
	if !isValidID(request.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(request.AgentID) {
		return nil, ErrInvalidAgentID
	}

	var assigned *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		agentEntity, err := d.agentRepository.GetByID(ctx, request.AgentID)
		if err != nil {
			return fmt.Errorf("get agent: %w", err)
		}
		if !agentEntity.IsActive || !agentEntity.IsVerified {
			return ErrAgentNotEligible
		}

		assigned, err = d.assignPending(ctx, request.OrderID, request.AgentID, request.AdjustedFee, request.AdjustmentReason)
		if err != nil {
			return err
		}

		response := entities.AgentOrderResponse{
			OrderID:         request.OrderID,
			AgentID:         request.AgentID,
			Action:          entities.ResponseAccepted,
			ProposedFee:     request.AdjustedFee,
			ResponseMessage: request.AdjustmentReason,
			CreatedAt:       time.Now().UTC(),
		}
		if _, err := d.responseRepository.Create(ctx, response); err != nil {
			return fmt.Errorf("log assignment response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// Respond обрабатывает решение агента. decline никогда не мутирует заказ:
// пишется только строка журнала, заказ остаётся видимым остальным.
func (d *Dispatch) Respond(ctx context.Context, request RespondRequest) (*entities.DeliveryOrder, error) {
	if !isValidID(request.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(request.AgentID) {
		return nil, ErrInvalidAgentID
	}

	switch request.Action {
	case entities.ResponseDeclined:
		return d.respondDeclined(ctx, request)
	case entities.ResponseAccepted:
		return d.respondAssigning(ctx, request, nil, nil)
	case entities.ResponseCounterOffer:
		if request.ProposedFee == nil {
			return nil, ErrProposedFeeRequired
		}
		return d.respondAssigning(ctx, request, request.ProposedFee, request.Message)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponseAction, request.Action)
	}
}

func (d *Dispatch) respondDeclined(ctx context.Context, request RespondRequest) (*entities.DeliveryOrder, error) {
	orderEntity, err := d.orderRepository.GetByID(ctx, request.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	response := entities.AgentOrderResponse{
		OrderID:         request.OrderID,
		AgentID:         request.AgentID,
		Action:          entities.ResponseDeclined,
		ResponseMessage: request.Message,
		CreatedAt:       time.Now().UTC(),
	}
	if _, err := d.responseRepository.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("log declined response: %w", err)
	}

	return orderEntity, nil
}

func (d *Dispatch) respondAssigning(ctx context.Context, request RespondRequest, adjustedFee *float64, reason *string) (*entities.DeliveryOrder, error) {
	var assigned *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		assigned, err = d.assignPending(ctx, request.OrderID, request.AgentID, adjustedFee, reason)
		if err != nil {
			return err
		}

		response := entities.AgentOrderResponse{
			OrderID:         request.OrderID,
			AgentID:         request.AgentID,
			Action:          request.Action,
			ProposedFee:     request.ProposedFee,
			ResponseMessage: request.Message,
			CreatedAt:       time.Now().UTC(),
		}
		if _, err := d.responseRepository.Create(ctx, response); err != nil {
			return fmt.Errorf("log agent response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// assignPending — единственное место записи назначения.
// Ноль затронутых строк означает проигранную гонку: заказ перечитывается,
// чтобы отличить конфликт от отмены и отсутствия.
func (d *Dispatch) assignPending(ctx context.Context, orderID, agentID string, adjustedFee *float64, reason *string) (*entities.DeliveryOrder, error) {
	assigned, err := d.orderRepository.AssignIfPending(ctx, orderID, agentID, adjustedFee, reason)
	if err == nil {
		return assigned, nil
	}
	if !errors.Is(err, order.ErrOrderNotFound) {
		return nil, fmt.Errorf("assign order: %w", err)
	}

	current, readErr := d.orderRepository.GetByID(ctx, orderID)
	if readErr != nil {
		return nil, fmt.Errorf("re-read order after failed assignment: %w", readErr)
	}

	switch current.Status {
	case entities.OrderAgentAssigned, entities.OrderPickedUp, entities.OrderInTransit, entities.OrderDelivered:
		return nil, fmt.Errorf("order %s already assigned: %w", orderID, ErrConflictingAssignment)
	default:
		return nil, fmt.Errorf("order %s is %s: %w", orderID, current.Status, ErrInvalidTransition)
	}
}

// ListResponses — журнал переговоров по заказу в порядке записи.
func (d *Dispatch) ListResponses(ctx context.Context, orderID string) ([]entities.AgentOrderResponse, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	responses, err := d.responseRepository.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	return responses, nil
}

// SweepPending повторяет автоподбор для залежавшихся pending-заказов.
// Заказы никогда не отменяет.
func (d *Dispatch) SweepPending(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	stale, err := d.orderRepository.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stale pending orders: %w", err)
	}

	var assigned int64
	for i := range stale {
		_, err := d.AutoAssign(ctx, stale[i].ID)
		switch {
		case err == nil:
			assigned++
		case errors.Is(err, ErrNoFreeAgent):
			// свободных агентов не осталось, остаток списка подождёт
			return assigned, nil
		case errors.Is(err, ErrConflictingAssignment), errors.Is(err, ErrInvalidTransition):
			continue
		default:
			return assigned, fmt.Errorf("sweep auto-assign %s: %w", stale[i].ID, err)
		}
	}

	return assigned, nil
}
