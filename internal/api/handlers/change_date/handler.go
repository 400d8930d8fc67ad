package change_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD не в прошлом"
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

// Handle PUT /api/v1/sessions/{sessionId}/date
// Смена даты сбрасывает выбор и список слотов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.ChangeDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeDate(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidDate):
			h.logger.Warn("PUT /sessions/{id}/date - Invalid date: session=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/date - Invalid session ID: %s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/date - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/date - Failed to change date: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/date - Date changed: session=%s, date=%s", sessionID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
