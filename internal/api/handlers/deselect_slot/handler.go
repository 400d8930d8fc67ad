package deselect_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

const (
	msgInvalidCourtID  = "некорректный ID корта"
	msgInvalidInput    = "некорректный ID сессии или время начала"
	msgSessionNotFound = "сессия не найдена или истекла"
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

// Handle DELETE /api/v1/sessions/{sessionId}/slots/{courtId}/{startTime}
// Снятие слота из середины блока отрезает все слоты после него
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id}/slots - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	req := &models.SlotRequest{CourtID: courtID, StartTime: vars["startTime"]}
	result, err := h.service.DeselectSlot(r.Context(), sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("DELETE /sessions/{id}/slots - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/slots - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /sessions/{id}/slots - Failed to deselect slot: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/slots - Slot deselected: session=%s, court_id=%d, start=%s, outcome=%s",
		sessionID, courtID, req.StartTime, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, result)
}
