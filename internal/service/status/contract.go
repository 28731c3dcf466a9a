//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_test
package status

import (
	"context"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error)
	// AdvanceStatusIf применяет переход только если текущий статус равен
	// ожидаемому, вместе со штампами времени и вложениями.
	AdvanceStatusIf(ctx context.Context, orderID string, from, to entities.OrderStatusType, stamp entities.StatusStamp) (*entities.DeliveryOrder, error)
	CancelIfPending(ctx context.Context, orderID string) (*entities.DeliveryOrder, error)
}

type AgentRepository interface {
	// IncrementDeliveryStats — атомарный инкремент агрегатов агента,
	// не read-modify-write.
	IncrementDeliveryStats(ctx context.Context, agentID string, earnedFee float64) (*entities.DeliveryAgent, error)
}

type BlobGateway interface {
	UploadProofImages(ctx context.Context, orderID string, images [][]byte) ([]string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
