package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgEmptySelection     = "не выбрано ни одного слота"
	msgInvalidSelection   = "выбранные слоты должны идти подряд на одном корте"
	msgSlotNotListed      = "выбранный слот отсутствует в текущем списке, обновите доступные слоты"
	msgMissingSlotID      = "выбранный слот нельзя забронировать онлайн"
	msgCourtNotFound      = "корт не найден"
	msgSlotNotAvailable   = "выбранный временной слот уже недоступен, выбор сброшен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /sessions/{id}/booking - Slot not available: session=%s", sessionID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotNotListed):
			h.logger.Warn("POST /sessions/{id}/booking - Slot not listed: session=%s", sessionID)
			handlers.RespondConflict(w, msgSlotNotListed)

		case errors.Is(err, createBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/booking - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /sessions/{id}/booking - Court not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrEmptySelection):
			h.logger.Warn("POST /sessions/{id}/booking - Empty selection: session=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgEmptySelection)

		case errors.Is(err, createBooking.ErrInvalidSelection):
			h.logger.Warn("POST /sessions/{id}/booking - Invalid selection: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSelection)

		case errors.Is(err, createBooking.ErrMissingSlotID):
			h.logger.Warn("POST /sessions/{id}/booking - Slot without booking id: session=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMissingSlotID)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/booking - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions/{id}/booking - Failed to create booking: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sessions/{id}/booking - Booking created successfully: session=%s, booking_id=%s, court_id=%d",
		sessionID, result.BookingID, result.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
