//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_get_test
package agent_get

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
	GetAgent(ctx context.Context, id string) (*entities.DeliveryAgent, error)
}
