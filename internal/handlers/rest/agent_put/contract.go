//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_put_test
package agent_put

import (
	"context"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.DeliveryAgent, error)
}
