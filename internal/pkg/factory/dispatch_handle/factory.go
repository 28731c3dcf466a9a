package dispatch_handle

import (
	"context"
	"errors"
	"fmt"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

// OrderEventType — тип события заказа из внешней commerce-платформы.
type OrderEventType string

const (
	OrderEventCreated   OrderEventType = "created"
	OrderEventCancelled OrderEventType = "cancelled"
)

var ErrUndefinedEvent = errors.New("undefined order event")

type ExecuteFn func(ctx context.Context, orderID string) error

type DispatchService interface {
	AutoAssign(ctx context.Context, orderID string) (*entities.DeliveryOrder, error)
}

type StatusService interface {
	Cancel(ctx context.Context, orderID string) (*entities.DeliveryOrder, error)
}

type EventHandlerFactory struct {
	dispatchService DispatchService
	statusService   StatusService
}

func NewEventHandlerFactory(dispatchService DispatchService, statusService StatusService) *EventHandlerFactory {
	return &EventHandlerFactory{
		dispatchService: dispatchService,
		statusService:   statusService,
	}
}

func (f *EventHandlerFactory) GetHandler(event OrderEventType) (ExecuteFn, error) {
	switch event {
	case OrderEventCreated:
		return f.createdHandler, nil
	case OrderEventCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUndefinedEvent, event)
	}
}

func (f *EventHandlerFactory) createdHandler(ctx context.Context, orderID string) error {
	_, err := f.dispatchService.AutoAssign(ctx, orderID)
	if err != nil {
		return fmt.Errorf("auto assign created order %s: %w", orderID, err)
	}
	return nil
}

func (f *EventHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	_, err := f.statusService.Cancel(ctx, orderID)
	if err != nil {
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return nil
}
