package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/order"
)

const OpLocation EventOp = "location"

// Tracker принимает геопинги назначенного агента и раздаёт их
// подписчикам заказа через хаб. Хранится только последняя точка.
type Tracker struct {
	orderRepository    OrderRepository
	locationRepository LocationRepository
	hub                *Hub
}

func NewTracker(
	orderRepository OrderRepository,
	locationRepository LocationRepository,
	hub *Hub,
) *Tracker {
	return &Tracker{
		orderRepository:    orderRepository,
		locationRepository: locationRepository,
		hub:                hub,
	}
}

type PingRequest struct {
	OrderID      string
	ActorAgentID string
	Lat          float64
	Lng          float64
}

// RecordPing сохраняет точку и публикует её в хаб. Писать может только
// назначенный агент, и только пока заказ в работе.
func (t *Tracker) RecordPing(ctx context.Context, request PingRequest) (*entities.LocationPing, error) {
	if request.OrderID == "" {
		return nil, ErrInvalidOrderID
	}
	if request.ActorAgentID == "" {
		return nil, ErrInvalidAgentID
	}
	if request.Lat < -90 || request.Lat > 90 || request.Lng < -180 || request.Lng > 180 {
		return nil, ErrInvalidCoordinate
	}

	orderEntity, err := t.orderRepository.GetByID(ctx, request.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order for ping: %w", err)
	}

	if orderEntity.AssignedAgentID == nil || *orderEntity.AssignedAgentID != request.ActorAgentID {
		return nil, ErrNotAssignedAgent
	}
	if orderEntity.Status.IsTerminal() || orderEntity.Status == entities.OrderPending {
		return nil, ErrOrderNotActive
	}

	ping, err := t.locationRepository.Upsert(ctx, entities.LocationPing{
		OrderID:    request.OrderID,
		AgentID:    request.ActorAgentID,
		Lat:        request.Lat,
		Lng:        request.Lng,
		RecordedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert location ping: %w", err)
	}

	fields, err := json.Marshal(map[string]interface{}{
		"lat":         ping.Lat,
		"lng":         ping.Lng,
		"recorded_at": ping.RecordedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal ping fields: %w", err)
	}

	t.hub.Publish(Event{
		Op:              OpLocation,
		OrderID:         orderEntity.ID,
		UserID:          orderEntity.UserID,
		AssignedAgentID: orderEntity.AssignedAgentID,
		Fields:          fields,
	})

	return ping, nil
}

// LastPing — последняя известная точка агента по заказу.
func (t *Tracker) LastPing(ctx context.Context, orderID string) (*entities.LocationPing, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	ping, err := t.locationRepository.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get last ping: %w", err)
	}

	return ping, nil
}
