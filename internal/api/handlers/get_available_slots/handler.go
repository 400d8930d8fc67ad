package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-CourtBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidArenaID  = "некорректный ID арены"
	msgMissingDate     = "дата или ID сессии обязательны"
	msgInvalidDate     = "некорректная дата, ожидается YYYY-MM-DD не в прошлом"
	msgDateMismatch    = "дата не совпадает с датой сессии"
	msgInvalidInput    = "некорректные параметры запроса"
	msgArenaNotFound   = "арена не найдена"
	msgSessionNotFound = "сессия не найдена или истекла"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/arenas/{arenaId}/available-slots
// Query params: date (YYYY-MM-DD), sessionId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем arenaId из URL
	arenaID, err := strconv.ParseInt(vars["arenaId"], 10, 64)
	if err != nil || arenaID <= 0 {
		h.logger.Warn("GET /arenas/{id}/available-slots - Invalid arena ID: %s", vars["arenaId"])
		handlers.RespondBadRequest(w, msgInvalidArenaID)
		return
	}

	// Извлекаем date и sessionId из query параметров
	query := r.URL.Query()
	date := query.Get("date")
	sessionID := query.Get("sessionId")
	if date == "" && sessionID == "" {
		h.logger.Warn("GET /arenas/{id}/available-slots - Missing date: arena_id=%d", arenaID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(arenaID, date, sessionID))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /arenas/{id}/available-slots - Invalid date: arena_id=%d, date=%s", arenaID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateMismatch):
			h.logger.Warn("GET /arenas/{id}/available-slots - Date mismatch: arena_id=%d, session=%s", arenaID, sessionID)
			handlers.RespondBadRequest(w, msgDateMismatch)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /arenas/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrArenaNotFound):
			h.logger.Warn("GET /arenas/{id}/available-slots - Arena not found: arena_id=%d", arenaID)
			handlers.RespondNotFound(w, msgArenaNotFound)

		case errors.Is(err, getAvailableSlots.ErrSessionNotFound):
			h.logger.Warn("GET /arenas/{id}/available-slots - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /arenas/{id}/available-slots - Failed to get slots: arena_id=%d, error=%v", arenaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /arenas/{id}/available-slots - Slots retrieved successfully: arena_id=%d, courts=%d",
		arenaID, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, response)
}
