//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feed_test
package feed

import (
	"context"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.DeliveryOrder, error)
}

type LocationRepository interface {
	Upsert(ctx context.Context, ping entities.LocationPing) (*entities.LocationPing, error)
	GetByOrder(ctx context.Context, orderID string) (*entities.LocationPing, error)
}
