//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error)
	// AssignIfPending — условная запись назначения: применяется только если
	// заказ всё ещё pending, иначе ноль строк.
	AssignIfPending(ctx context.Context, orderID, agentID string, adjustedFee *float64, adjustmentReason *string) (*entities.DeliveryOrder, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]entities.DeliveryOrder, error)
}

type AgentRepository interface {
	GetByID(ctx context.Context, id string) (*entities.DeliveryAgent, error)
	// PickFreeAgent — первый по порядку реестра активный верифицированный
	// агент со статусом online и без активных заказов.
	PickFreeAgent(ctx context.Context) (*entities.DeliveryAgent, error)
}

type ResponseRepository interface {
	Create(ctx context.Context, response entities.AgentOrderResponse) (*entities.AgentOrderResponse, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.AgentOrderResponse, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
