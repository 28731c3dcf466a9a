package availability_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/identity"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/agent"
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
	actorAgentID := identity.AgentID(r)
	if actorAgentID == "" {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	agentID := mux.Vars(r)["id"]

	var availabilityDTO dto.AvailabilityUpdate
	err := json.NewDecoder(r.Body).Decode(&availabilityDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	availability, err := h.service.SetAvailability(
		r.Context(),
		actorAgentID,
		agentID,
		entities.AvailabilityStatusType(availabilityDTO.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrNotOwnAvailability):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, agent.ErrInvalidAgentID),
			errors.Is(err, agent.ErrInvalidAvailabilityStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Availability{
		AgentID:    availability.AgentID,
		Status:     availability.Status.String(),
		LastSeenAt: availability.LastSeenAt,
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
