package agent_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/conv"
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
	agentID := mux.Vars(r)["id"]

	isAdmin := identity.IsAdmin(r)
	if !isAdmin && identity.AgentID(r) != agentID {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var agentUpdateDTO dto.AgentUpdate
	err := json.NewDecoder(r.Body).Decode(&agentUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// верификацию и активность меняет только администратор
	if !isAdmin && (agentUpdateDTO.IsVerified != nil || agentUpdateDTO.IsActive != nil) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	agentModify := entities.AgentModify{
		ID:            pointer.To(agentID),
		FullName:      agentUpdateDTO.FullName,
		Phone:         agentUpdateDTO.Phone,
		Email:         agentUpdateDTO.Email,
		AvatarURL:     agentUpdateDTO.AvatarURL,
		ServiceAreaID: agentUpdateDTO.ServiceAreaID,
		IsVerified:    agentUpdateDTO.IsVerified,
		IsActive:      agentUpdateDTO.IsActive,
	}
	if agentUpdateDTO.VehicleType != nil {
		vehicleType := entities.AgentVehicleType(*agentUpdateDTO.VehicleType)
		agentModify.VehicleType = &vehicleType
	}

	agentEntity, err := h.service.UpdateAgent(r.Context(), agentModify)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, agent.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, agent.ErrInvalidAgentID),
			errors.Is(err, agent.ErrInvalidPhone),
			errors.Is(err, agent.ErrInvalidVehicle),
			errors.Is(err, agent.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(conv.ToAgentDTO(agentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
