package eta_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	estimator Estimator
}

func New(log handlerLogger, estimator Estimator) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		estimator: estimator,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	distanceKm, err := strconv.ParseFloat(r.URL.Query().Get("distance_km"), 64)
	if err != nil || distanceKm < 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status := entities.OrderStatusType(r.URL.Query().Get("status"))
	switch status {
	case entities.OrderPending, entities.OrderAgentAssigned,
		entities.OrderPickedUp, entities.OrderInTransit,
		entities.OrderDelivered, entities.OrderCancelled:
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response := dto.EtaResponse{
		Eta:     h.estimator.Estimate(distanceKm, status),
		Minutes: h.estimator.EstimateMinutes(distanceKm, status),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
