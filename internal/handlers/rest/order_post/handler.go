package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/conv"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/identity"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/order"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserID(r)
	if userID == "" {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	urgency := entities.DefaultUrgencyType
	if orderCreateDTO.Urgency != "" {
		urgency = entities.OrderUrgencyType(orderCreateDTO.Urgency)
	}

	spec := entities.OrderSpec{
		UserID:           userID,
		PreferredAgentID: orderCreateDTO.PreferredAgentID,
		Pickup: entities.Endpoint{
			Address:      orderCreateDTO.Pickup.Address,
			ContactName:  orderCreateDTO.Pickup.ContactName,
			ContactPhone: orderCreateDTO.Pickup.ContactPhone,
		},
		Delivery: entities.Endpoint{
			Address:      orderCreateDTO.Delivery.Address,
			ContactName:  orderCreateDTO.Delivery.ContactName,
			ContactPhone: orderCreateDTO.Delivery.ContactPhone,
		},
		WeightKg:           orderCreateDTO.WeightKg,
		IsFragile:          orderCreateDTO.IsFragile,
		PackageDescription: orderCreateDTO.PackageDescription,
		DistanceKm:         orderCreateDTO.DistanceKm,
		TotalFee:           orderCreateDTO.TotalFee,
		PromoCode:          orderCreateDTO.PromoCode,
		Urgency:            urgency,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), spec)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidUserID),
			errors.Is(err, order.ErrInvalidEndpoint),
			errors.Is(err, order.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(conv.ToOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
