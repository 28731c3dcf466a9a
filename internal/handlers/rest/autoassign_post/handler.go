package autoassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/conv"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/identity"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/dispatch"
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
	if !identity.IsAdmin(r) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var autoAssignDTO dto.AutoAssignRequest
	err := json.NewDecoder(r.Body).Decode(&autoAssignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.AutoAssign(r.Context(), autoAssignDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrNoFreeAgent),
			errors.Is(err, dispatch.ErrInvalidTransition),
			errors.Is(err, dispatch.ErrConflictingAssignment):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(conv.ToOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
