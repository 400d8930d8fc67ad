package start_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сессии"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD не в прошлом"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.StartRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Start(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidDate):
			h.logger.Warn("POST /sessions - Invalid date: arena_id=%d, date=%s", req.ArenaID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions - Failed to start session: arena_id=%d, error=%v", req.ArenaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session started: session=%s, arena_id=%d, date=%s", result.ID, result.ArenaID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
