package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-CourtBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CourtBooking/internal/pricing"
	"github.com/m04kA/SMC-CourtBooking/internal/slots"
	"github.com/m04kA/SMC-CourtBooking/pkg/ptr"
)

// Режимы и результаты отправки для метрик
const (
	modeSingle = "single"
	modeFixed  = "fixed"

	resultCreated  = "created"
	resultRejected = "rejected"
	resultError    = "error"
)

// UseCase use case для создания бронирования выбранных слотов
type UseCase struct {
	sessionRepo   SessionRepository
	bookingClient BookingAPIClient
	recorder      MetricsRecorder
	sessionTTL    time.Duration
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	bookingClient BookingAPIClient,
	recorder MetricsRecorder,
	sessionTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:   sessionRepo,
		bookingClient: bookingClient,
		recorder:      recorder,
		sessionTTL:    sessionTTL,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Выбор сессии очищается после успеха и после отказа API (слот уже занят)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, players=%d, public=%t", req.SessionID, ptr.Value(req.Players), req.Public)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем сессию
	session, err := uc.sessionRepo.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("CreateBooking: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateBooking: failed to load session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	// 3. Определяем вид спорта и количество игроков
	sport := strings.TrimSpace(req.Sport)
	if sport == "" {
		sport = session.Sport
	}
	if sport == "" {
		uc.logger.Warn("CreateBooking: session=%s has no sport", session.ID)
		return nil, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	players := domain.DefaultPlayers
	if req.Players != nil {
		players = *req.Players
	}

	// 4. Собираем payload из выбора и последнего списка слотов
	payload, err := buildPayload(session, sport, players, req.Public)
	if err != nil {
		uc.logger.Warn("CreateBooking: session=%s cannot build payload: %v", session.ID, err)
		return nil, err
	}

	// 5. Стоимость считается по тому же состоянию, что и payload
	quote := pricing.Quote(session.SelectedSlots(), session.Date, session.Recurring, session.RecurrenceMonths())
	mode := modeSingle
	if payload.IsFixo {
		mode = modeFixed
	}

	// 6. Отправляем бронирование во внешний API
	created, err := uc.bookingClient.CreateBooking(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrSlotUnavailable):
			uc.recorder.BookingSubmitted(mode, resultRejected)
			uc.logger.Warn("CreateBooking: session=%s rejected by booking API, selection reset: %v", session.ID, err)
			uc.resetSelection(ctx, session)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, bookingapi.ErrCourtNotFound):
			uc.recorder.BookingSubmitted(mode, resultRejected)
			uc.logger.Warn("CreateBooking: court=%d unknown to booking API", payload.QuadraID)
			return nil, ErrCourtNotFound
		default:
			uc.recorder.BookingSubmitted(mode, resultError)
			uc.logger.Error("CreateBooking: session=%s booking API error: %v", session.ID, err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}
	uc.recorder.BookingSubmitted(mode, resultCreated)

	resp := &Response{
		BookingID:       created.ID,
		Status:          created.Status,
		CourtID:         session.Selection.CourtID,
		Date:            session.Date,
		Times:           session.Selection.Times,
		Label:           slots.RangeLabel(session.Selection),
		Recurring:       payload.IsFixo,
		Period:          payload.PeriodoFixo,
		OccurrenceCount: quote.OccurrenceCount,
		LastOccurrence:  quote.LastOccurrence,
		TotalPrice:      quote.TotalPrice,
	}

	// 7. Очищаем выбор: забронированные слоты больше не доступны
	uc.resetSelection(ctx, session)

	uc.logger.Info("CreateBooking: booking=%s created for session=%s, court=%d, slots=%d, mode=%s, total=%s",
		created.ID, session.ID, resp.CourtID, len(resp.Times), mode, resp.TotalPrice.StringFixed(2))

	return resp, nil
}

// resetSelection очищает выбор и список слотов, клиент должен запросить слоты заново
// Ошибка сохранения не отменяет результат бронирования
func (uc *UseCase) resetSelection(ctx context.Context, session *domain.BookingSession) {
	session.ResetSelection()
	session.Listing = nil
	session.UpdatedAt = uc.timeProvider.Now()
	if err := uc.sessionRepo.Save(ctx, session, uc.sessionTTL); err != nil {
		uc.logger.Error("CreateBooking: failed to save session=%s: %v", session.ID, err)
	}
}
