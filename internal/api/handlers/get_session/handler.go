package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgSessionNotFound  = "сессия не найдена или истекла"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id} - Invalid session ID: %s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id} - Session retrieved: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
