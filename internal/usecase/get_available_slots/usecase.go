package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-CourtBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CourtBooking/internal/selection"
	"github.com/m04kA/SMC-CourtBooking/internal/slots"
)

// UseCase use case для получения доступных слотов арены
type UseCase struct {
	scheduleRepo  ScheduleRepository
	bookingClient BookingAPIClient
	sessionRepo   SessionRepository
	recorder      MetricsRecorder
	sessionTTL    time.Duration
	loc           *time.Location
	concurrency   int
	timeProvider  TimeProvider
	logger        Logger

	// корты, о которых уже предупредили: слоты из расписания без ID нельзя забронировать
	unbookable sync.Map
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingClient BookingAPIClient,
	sessionRepo SessionRepository,
	recorder MetricsRecorder,
	sessionTTL time.Duration,
	loc *time.Location,
	concurrency int,
	logger Logger,
) *UseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &UseCase{
		scheduleRepo:  scheduleRepo,
		bookingClient: bookingClient,
		sessionRepo:   sessionRepo,
		recorder:      recorder,
		sessionTTL:    sessionTTL,
		loc:           loc,
		concurrency:   concurrency,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: arena=%d, date=%s, session=%s", req.ArenaID, req.Date, req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем сессию, если передана
	var session *domain.BookingSession
	if req.SessionID != "" {
		s, err := uc.sessionRepo.Get(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				uc.logger.Warn("GetAvailableSlots: session=%s not found", req.SessionID)
				return nil, ErrSessionNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to load session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
		}
		if s.ArenaID != req.ArenaID {
			uc.logger.Warn("GetAvailableSlots: session=%s belongs to arena=%d, not %d", s.ID, s.ArenaID, req.ArenaID)
			return nil, fmt.Errorf("%w: session belongs to another arena", ErrInvalidInput)
		}
		session = s
	}

	// 4. Определяем дату: из запроса или из сессии
	date, err := uc.resolveDate(req, session)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}
	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем корты арены
	courts, err := uc.scheduleRepo.ListCourtsByArena(ctx, req.ArenaID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list courts for arena=%d: %v", req.ArenaID, err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}
	if len(courts) == 0 {
		uc.logger.Warn("GetAvailableSlots: arena=%d has no courts", req.ArenaID)
		return nil, ErrArenaNotFound
	}

	// 6. Собираем слоты кортов параллельно и отбрасываем прошедшие
	fetched := uc.fetchCourts(ctx, courts, date)

	listing := make(map[int64][]domain.Slot, len(courts))
	degraded := make(map[int64]bool)
	for i, court := range courts {
		res := fetched[i]
		if res.err != nil {
			// Недоступность одного источника не ломает весь список
			uc.logger.Error("GetAvailableSlots: court=%d source=%s unavailable: %v", court.ID, res.source, res.err)
			degraded[court.ID] = true
			continue
		}

		if res.malformed > 0 {
			uc.logger.Warn("GetAvailableSlots: court=%d source=%s has %d malformed records", court.ID, res.source, res.malformed)
			for j := 0; j < res.malformed; j++ {
				uc.recorder.MalformedRecord(res.source)
			}
		}

		list := slots.FilterPast(res.slots, now)
		uc.recorder.SlotsListed(res.source, len(list))
		listing[court.ID] = list
	}

	// 7. Сохраняем список в сессию: цены выбора берутся из него
	var sel domain.Selection
	if session != nil {
		uc.refreshSession(session, listing, now)
		if err := uc.sessionRepo.Save(ctx, session, uc.sessionTTL); err != nil {
			uc.logger.Error("GetAvailableSlots: failed to save session=%s: %v", session.ID, err)
			return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
		}
		sel = session.Selection
	}

	// 8. Формируем ответ с подписями и признаками выбора
	resp := &Response{
		ArenaID: req.ArenaID,
		Date:    date,
		Courts:  make([]Court, 0, len(courts)),
	}
	total := 0
	for _, court := range courts {
		list := listing[court.ID]
		total += len(list)
		resp.Courts = append(resp.Courts, Court{
			CourtID:         court.ID,
			Name:            court.Name,
			DurationMinutes: court.SlotMinutes(),
			Source:          sourceOf(court),
			Degraded:        degraded[court.ID],
			Slots:           toSlots(list, sel),
		})
	}

	uc.logger.Info("GetAvailableSlots: arena=%d, date=%s, courts=%d, slots=%d, degraded=%d",
		req.ArenaID, date.Format(domain.DateFormat), len(courts), total, len(degraded))

	return resp, nil
}

func (uc *UseCase) resolveDate(req *Request, session *domain.BookingSession) (time.Time, error) {
	if req.Date == "" {
		return session.Date, nil
	}

	date, err := parseDate(req.Date, uc.loc)
	if err != nil {
		return time.Time{}, err
	}
	if session != nil && !date.Equal(session.Date) {
		return time.Time{}, fmt.Errorf("%w: session date is %s", ErrDateMismatch, session.Date.Format(domain.DateFormat))
	}
	return date, nil
}

type courtResult struct {
	slots     []domain.Slot
	source    string
	malformed int
	err       error
}

// fetchCourts получает слоты всех кортов, не больше concurrency запросов одновременно
// Ошибка корта остается в его результате и не отменяет остальные
func (uc *UseCase) fetchCourts(ctx context.Context, courts []domain.Court, date time.Time) []courtResult {
	results := make([]courtResult, len(courts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, court := range courts {
		i, court := i, court
		g.Go(func() error {
			list, source, malformed, err := uc.courtSlots(gctx, court, date)
			results[i] = courtResult{slots: list, source: source, malformed: malformed, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// courtSlots слоты корта на дату из его источника
func (uc *UseCase) courtSlots(ctx context.Context, court domain.Court, date time.Time) ([]domain.Slot, string, int, error) {
	source := sourceOf(court)

	if court.HasSchedule {
		schedule, err := uc.scheduleRepo.GetWeeklySchedule(ctx, court.ID)
		if err != nil {
			return nil, source, 0, err
		}
		list, malformed := slots.ExpandDay(schedule, court, date)
		uc.warnUnbookable(court, list)
		return list, source, malformed, nil
	}

	records, err := uc.bookingClient.GetCourtSlots(ctx, court.ID, date)
	if errors.Is(err, bookingapi.ErrCourtNotFound) {
		uc.logger.Warn("GetAvailableSlots: court=%d unknown to booking API, no slots", court.ID)
		return nil, source, 0, nil
	}
	if err != nil {
		return nil, source, 0, err
	}
	list, malformed := slots.FromRecords(court, date, records)
	return list, source, malformed, nil
}

// warnUnbookable один раз на корт сообщает, что его слоты показываются, но не бронируются:
// у слотов из недельного расписания нет ID API бронирований
func (uc *UseCase) warnUnbookable(court domain.Court, list []domain.Slot) {
	missing := 0
	for _, s := range list {
		if s.ID == "" {
			missing++
		}
	}
	if missing == 0 {
		return
	}
	if _, seen := uc.unbookable.LoadOrStore(court.ID, struct{}{}); seen {
		return
	}
	uc.logger.Warn("GetAvailableSlots: court=%d lists %d schedule slots without booking API id, they cannot be booked",
		court.ID, missing)
}

// refreshSession заменяет список слотов сессии
// Выбор сохраняется, только если все его слоты остались в новом списке и доступны
func (uc *UseCase) refreshSession(session *domain.BookingSession, listing map[int64][]domain.Slot, now time.Time) {
	session.Listing = listing
	session.UpdatedAt = now

	for _, key := range session.Selection.Keys() {
		slot, ok := session.FindSlot(key)
		if !ok || !slot.IsSelectable() {
			uc.logger.Warn("GetAvailableSlots: session=%s selected slot court=%d start=%s is gone, selection reset",
				session.ID, key.CourtID, key.StartTime)
			session.ResetSelection()
			return
		}
	}
}

func sourceOf(court domain.Court) string {
	if court.HasSchedule {
		return domain.SourceSchedule
	}
	return domain.SourceBookingAPI
}

func toSlots(list []domain.Slot, sel domain.Selection) []Slot {
	result := make([]Slot, len(list))
	for i, s := range list {
		result[i] = Slot{
			ID:              s.ID,
			StartTime:       s.StartTime,
			Label:           slots.Label(s.StartTime, s.DurationMinutes),
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Status:          s.Status,
			Available:       s.Available,
			Selected:        sel.Contains(s.Key()),
			Selectable:      selection.CanSelect(sel, s),
		}
	}
	return result
}
