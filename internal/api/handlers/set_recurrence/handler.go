package set_recurrence

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidPeriod      = "некорректный период, допустимо UM_MES, TRES_MESES, SEIS_MESES"
	msgSessionNotFound    = "сессия не найдена или истекла"
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

// Handle PUT /api/v1/sessions/{sessionId}/recurrence
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.SetRecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/recurrence - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetRecurrence(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidPeriod):
			h.logger.Warn("PUT /sessions/{id}/recurrence - Invalid period: session=%s, period=%s",
				sessionID, ptr.Value(req.Period))
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/recurrence - Invalid session ID: %s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/recurrence - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/recurrence - Failed to set recurrence: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/recurrence - Recurrence updated: session=%s, recurring=%t, period=%s",
		sessionID, result.Recurring, ptr.Value(result.Period))
	handlers.RespondJSON(w, http.StatusOK, result)
}
