//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity *entities.DeliveryOrder) (*entities.DeliveryOrder, error)
	GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error)
	ListByUser(ctx context.Context, userID string) ([]entities.DeliveryOrder, error)
	ListByAgent(ctx context.Context, agentID string, statusFilter *entities.OrderStatusType) ([]entities.DeliveryOrder, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.DeliveryOrder, error)
}
