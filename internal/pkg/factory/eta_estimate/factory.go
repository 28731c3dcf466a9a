package eta_estimate

import (
	"fmt"
	"math"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

// Средняя скорость агента в км/ч, единая для всех типов транспорта.
const averageSpeedKmh = 25

type EtaFactory struct{}

func New() *EtaFactory {
	return &EtaFactory{}
}

// EstimateMinutes — дорожное время до вручения плюс буфер этапа.
// Чем дальше заказ прошёл по цепочке, тем меньше буфер.
func (e *EtaFactory) EstimateMinutes(distanceKm float64, status entities.OrderStatusType) int {
	travelMinutes := distanceKm / averageSpeedKmh * 60

	var bufferMinutes float64
	switch status {
	case entities.OrderPending:
		bufferMinutes = 15
	case entities.OrderAgentAssigned:
		bufferMinutes = 10
	case entities.OrderPickedUp:
		bufferMinutes = 5
	default:
		bufferMinutes = 0
	}

	return int(math.Ceil(travelMinutes + bufferMinutes))
}

// Estimate возвращает оценку в человекочитаемом виде:
// "~39 mins" до часа, дальше "~1h 5m".
func (e *EtaFactory) Estimate(distanceKm float64, status entities.OrderStatusType) string {
	minutes := e.EstimateMinutes(distanceKm, status)

	if minutes < 60 {
		return fmt.Sprintf("~%d mins", minutes)
	}

	return fmt.Sprintf("~%dh %dm", minutes/60, minutes%60)
}
