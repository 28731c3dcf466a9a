package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/order"
)

// Status ведёт заказ по цепочке
// pending -> agent_assigned -> picked_up -> in_transit -> delivered,
// отмена возможна только из pending. Каждый переход — одна условная
// запись, поэтому конкурирующие продвижения не накладываются.
type Status struct {
	orderRepository OrderRepository
	agentRepository AgentRepository
	blobGateway     BlobGateway
	txManager       TxManager
}

func New(
	orderRepository OrderRepository,
	agentRepository AgentRepository,
	blobGateway BlobGateway,
	txManager TxManager,
) *Status {
	return &Status{
		orderRepository: orderRepository,
		agentRepository: agentRepository,
		blobGateway:     blobGateway,
		txManager:       txManager,
	}
}

// AdvanceRequest — продвижение статуса назначенным агентом.
// ProofImages обязательны при переходе в delivered.
type AdvanceRequest struct {
	OrderID      string
	ActorAgentID string
	Target       entities.OrderStatusType
	ProofImages  [][]byte
	Notes        *string
}

func (s *Status) AdvanceStatus(ctx context.Context, request AdvanceRequest) (*entities.DeliveryOrder, error) {
	if !isValidID(request.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(request.ActorAgentID) {
		return nil, ErrInvalidAgentID
	}
	if !isAgentTarget(request.Target) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTargetState, request.Target)
	}

	orderEntity, err := s.orderRepository.GetByID(ctx, request.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if orderEntity.AssignedAgentID == nil || *orderEntity.AssignedAgentID != request.ActorAgentID {
		return nil, ErrNotAssignedAgent
	}
	if !orderEntity.Status.CanAdvanceTo(request.Target) {
		return nil, fmt.Errorf("%s -> %s: %w", orderEntity.Status, request.Target, ErrInvalidTransition)
	}

	stamp := entities.StatusStamp{}
	now := time.Now().UTC()

	switch request.Target {
	case entities.OrderPickedUp:
		stamp.PickupTime = &now
	case entities.OrderDelivered:
		if len(request.ProofImages) == 0 {
			return nil, ErrProofRequired
		}

		// Загрузка в blob-хранилище идёт до транзакции: упавшая загрузка
		// не оставляет заказ в полузаписанном состоянии.
		uris, uploadErr := s.blobGateway.UploadProofImages(ctx, request.OrderID, request.ProofImages)
		if uploadErr != nil {
			return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, uploadErr)
		}

		stamp.DeliveryTime = &now
		stamp.ProofImages = uris
		stamp.DeliveryNotes = request.Notes
	}

	var advanced *entities.DeliveryOrder
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		advanced, txErr = s.advanceIf(ctx, request.OrderID, orderEntity.Status, request.Target, stamp)
		if txErr != nil {
			return txErr
		}

		if request.Target == entities.OrderDelivered {
			// Агрегаты агента двигаются в той же логической операции,
			// что и терминальный переход.
			if _, txErr = s.agentRepository.IncrementDeliveryStats(ctx, request.ActorAgentID, advanced.EffectiveFee()); txErr != nil {
				return fmt.Errorf("increment agent stats: %w", txErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return advanced, nil
}

// Cancel — административная отмена, легальна только из pending.
func (s *Status) Cancel(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	cancelled, err := s.orderRepository.CancelIfPending(ctx, orderID)
	if err == nil {
		return cancelled, nil
	}
	if !errors.Is(err, order.ErrOrderNotFound) {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	current, readErr := s.orderRepository.GetByID(ctx, orderID)
	if readErr != nil {
		if errors.Is(readErr, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("re-read order after failed cancel: %w", readErr)
	}

	return nil, fmt.Errorf("order %s is %s: %w", orderID, current.Status, ErrInvalidTransition)
}

func (s *Status) advanceIf(ctx context.Context, orderID string, from, to entities.OrderStatusType, stamp entities.StatusStamp) (*entities.DeliveryOrder, error) {
	advanced, err := s.orderRepository.AdvanceStatusIf(ctx, orderID, from, to, stamp)
	if err == nil {
		return advanced, nil
	}
	if !errors.Is(err, order.ErrOrderNotFound) {
		return nil, fmt.Errorf("advance status: %w", err)
	}

	// Условная запись не нашла строку: либо заказ исчез, либо статус
	// уже сдвинут конкурентом и переход более не легален.
	current, readErr := s.orderRepository.GetByID(ctx, orderID)
	if readErr != nil {
		if errors.Is(readErr, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("re-read order after failed advance: %w", readErr)
	}

	return nil, fmt.Errorf("%s -> %s: %w", current.Status, to, ErrInvalidTransition)
}
