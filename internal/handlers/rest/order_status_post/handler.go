package order_status_post

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/conv"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/identity"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/status"
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
	agentID := identity.AgentID(r)
	if agentID == "" {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	orderID := mux.Vars(r)["id"]

	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	proofImages := make([][]byte, 0, len(statusUpdateDTO.ProofImages))
	for _, encoded := range statusUpdateDTO.ProofImages {
		image, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		proofImages = append(proofImages, image)
	}

	request := status.AdvanceRequest{
		OrderID:      orderID,
		ActorAgentID: agentID,
		Target:       entities.OrderStatusType(statusUpdateDTO.TargetStatus),
		ProofImages:  proofImages,
		Notes:        statusUpdateDTO.DeliveryNotes,
	}

	orderEntity, err := h.service.AdvanceStatus(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, status.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, status.ErrNotAssignedAgent):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, status.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, status.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		case errors.Is(err, status.ErrInvalidOrderID),
			errors.Is(err, status.ErrInvalidAgentID),
			errors.Is(err, status.ErrInvalidTargetState),
			errors.Is(err, status.ErrProofRequired):
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
