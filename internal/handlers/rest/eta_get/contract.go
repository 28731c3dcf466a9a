//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eta_get_test
package eta_get

import (
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

type Estimator interface {
	Estimate(distanceKm float64, status entities.OrderStatusType) string
	EstimateMinutes(distanceKm float64, status entities.OrderStatusType) int
}
