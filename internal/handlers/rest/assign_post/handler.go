package assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/conv"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/identity"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/agent"
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

	var assignDTO dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := dispatch.AssignmentRequest{
		OrderID:          assignDTO.OrderID,
		AgentID:          assignDTO.AgentID,
		AdjustedFee:      assignDTO.AdjustedFee,
		AdjustmentReason: assignDTO.AdjustmentReason,
	}

	orderEntity, err := h.service.Assign(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrInvalidTransition),
			errors.Is(err, dispatch.ErrConflictingAssignment):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidAgentID),
			errors.Is(err, dispatch.ErrAgentNotEligible):
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
