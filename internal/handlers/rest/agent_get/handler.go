package agent_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/conv"
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

	agentEntity, err := h.service.GetAgent(r.Context(), agentID)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, agent.ErrInvalidAgentID):
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
