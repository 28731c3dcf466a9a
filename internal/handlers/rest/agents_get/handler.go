package agents_get

import (
	"encoding/json"
	"net/http"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/generated/dto"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/conv"
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
	var serviceAreaID *string
	if area := r.URL.Query().Get("service_area"); area != "" {
		serviceAreaID = &area
	}

	agents, err := h.service.ListEligibleAgents(r.Context(), serviceAreaID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.AgentsResponse{
		Agents: conv.ToAgentDTOList(agents),
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
