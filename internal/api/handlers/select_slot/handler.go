package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMode        = "некорректный режим, допустимо select или toggle"
	msgInvalidInput       = "некорректный ID сессии, корта или время начала"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgSlotNotListed      = "слот отсутствует в текущем списке, обновите доступные слоты"
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

// Handle POST /api/v1/sessions/{sessionId}/slots
// Отклоненный клик не ошибка: 200 с accepted = false и неизменной сессией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, mode, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/slots - Invalid mode: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	click := h.service.SelectSlot
	if mode == ModeToggle {
		click = h.service.ToggleSlot
	}

	result, err := click(r.Context(), sessionID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/slots - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/slots - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrSlotNotListed):
			h.logger.Warn("POST /sessions/{id}/slots - Slot not listed: session=%s, court_id=%d, start=%s",
				sessionID, req.CourtID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotListed)

		default:
			h.logger.Error("POST /sessions/{id}/slots - Failed to %s slot: session=%s, error=%v", mode, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/slots - Slot %s: session=%s, court_id=%d, start=%s, outcome=%s",
		mode, sessionID, req.CourtID, req.StartTime, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, result)
}
