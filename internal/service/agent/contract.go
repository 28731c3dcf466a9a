//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_test
package agent

import (
	"context"
	"time"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.DeliveryAgent, error)
	GetByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error)
	ListEligible(ctx context.Context, serviceAreaID *string) ([]entities.DeliveryAgent, error)
	Update(ctx context.Context, agentModify entities.AgentModify) (*entities.DeliveryAgent, error)

	SetAvailability(ctx context.Context, agentID string, status entities.AvailabilityStatusType, seenAt time.Time) (*entities.AgentAvailability, error)
	GetAvailability(ctx context.Context, agentID string) (*entities.AgentAvailability, error)
	CountActiveOrders(ctx context.Context, agentID string) (int64, error)
}
