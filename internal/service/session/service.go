package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CourtBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-CourtBooking/internal/pricing"
	"github.com/m04kA/SMC-CourtBooking/internal/recurrence"
	"github.com/m04kA/SMC-CourtBooking/internal/selection"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Операции выбора для метрик
const (
	opSelect   = "select"
	opDeselect = "deselect"
	opToggle   = "toggle"
)

// Service сервис сессий бронирования
// Владеет единственной парой (выбор, план повторения) каждой сессии
type Service struct {
	repo     SessionRepository
	ttl      time.Duration
	loc      *time.Location
	recorder MetricsRecorder
	clock    TimeProvider
	logger   Logger
	newID    func() string
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	repo SessionRepository,
	ttl time.Duration,
	loc *time.Location,
	recorder MetricsRecorder,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		repo:     repo,
		ttl:      ttl,
		loc:      loc,
		recorder: recorder,
		clock:    clock,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Start создает новую сессию бронирования на дату
func (s *Service) Start(ctx context.Context, req *models.StartRequest) (*models.SessionResponse, error) {
	s.logger.Info("Start: arena=%d, date=%s, sport=%s", req.ArenaID, req.Date, req.Sport)

	if req.ArenaID <= 0 {
		return nil, fmt.Errorf("%w: arenaId must be positive", ErrInvalidInput)
	}
	sport := strings.TrimSpace(req.Sport)
	if len(sport) > domain.MaxSportLength {
		return nil, fmt.Errorf("%w: sport must not exceed %d characters", ErrInvalidInput, domain.MaxSportLength)
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &domain.BookingSession{
		ID:        s.newID(),
		ArenaID:   req.ArenaID,
		Sport:     sport,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Start: created session=%s for arena=%d on %s", session.ID, session.ArenaID, date.Format(domain.DateFormat))
	return s.toResponse(session), nil
}

// Get возвращает состояние сессии с пересчитанной стоимостью
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

// Close удаляет сессию, выбор и список слотов теряются
func (s *Service) Close(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed session id", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Close: session=%s not found", id)
			return ErrSessionNotFound
		}
		s.logger.Error("Close: failed to delete session=%s: %v", id, err)
		return fmt.Errorf("%w: delete session: %v", ErrInternal, err)
	}

	s.logger.Info("Close: session=%s deleted", id)
	return nil
}

// ChangeDate меняет дату сессии
// Смена даты сбрасывает выбор и последний список слотов
func (s *Service) ChangeDate(ctx context.Context, id string, req *models.ChangeDateRequest) (*models.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if !date.Equal(session.Date) {
		s.logger.Info("ChangeDate: session=%s %s -> %s, selection reset",
			id, session.Date.Format(domain.DateFormat), date.Format(domain.DateFormat))
		session.Date = date
		session.ResetSelection()
		session.Listing = nil
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

// SetRecurrence включает или выключает фиксированное бронирование и задает период
// Переключение режима сбрасывает выбор, смена одного только периода - нет
func (s *Service) SetRecurrence(ctx context.Context, id string, req *models.SetRecurrenceRequest) (*models.SessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Period != nil {
		period, err := domain.ParseFixedPeriod(*req.Period)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
		}
		session.Period = &period
	}

	if req.Enabled != session.Recurring {
		s.logger.Info("SetRecurrence: session=%s recurring=%t, selection reset", id, req.Enabled)
		session.Recurring = req.Enabled
		session.ResetSelection()
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

// SelectSlot пытается добавить слот к выбору
// Отклоненный выбор не является ошибкой: Accepted = false, состояние не меняется
func (s *Service) SelectSlot(ctx context.Context, id string, req *models.SlotRequest) (*models.TransitionResponse, error) {
	return s.transition(ctx, id, req, opSelect, selection.Select)
}

// ToggleSlot обрабатывает клик по слоту: снимает выбранный или пытается выбрать новый
func (s *Service) ToggleSlot(ctx context.Context, id string, req *models.SlotRequest) (*models.TransitionResponse, error) {
	return s.transition(ctx, id, req, opToggle, selection.Toggle)
}

// DeselectSlot снимает слот с выбора (с обрезкой блока от этого слота)
func (s *Service) DeselectSlot(ctx context.Context, id string, req *models.SlotRequest) (*models.TransitionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := slotKey(req)
	if err != nil {
		return nil, err
	}

	next, outcome := selection.Deselect(session.Selection, key)
	return s.apply(ctx, session, next, outcome, opDeselect, key)
}

// Quote возвращает стоимость текущего выбора
func (s *Service) Quote(ctx context.Context, id string) (*models.QuoteResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(session).Quote
	return &resp, nil
}

type transitionFunc func(domain.Selection, domain.Slot) (domain.Selection, selection.Outcome)

func (s *Service) transition(ctx context.Context, id string, req *models.SlotRequest, op string, fn transitionFunc) (*models.TransitionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := slotKey(req)
	if err != nil {
		return nil, err
	}

	slot, ok := session.FindSlot(key)
	if !ok {
		s.logger.Warn("%s: session=%s slot court=%d start=%s not in listing", op, id, key.CourtID, key.StartTime)
		return nil, fmt.Errorf("%w: court=%d start=%s", ErrSlotNotListed, key.CourtID, key.StartTime)
	}

	next, outcome := fn(session.Selection, slot)
	return s.apply(ctx, session, next, outcome, op, key)
}

// apply сохраняет сессию, если переход изменил выбор
func (s *Service) apply(ctx context.Context, session *domain.BookingSession, next domain.Selection, outcome selection.Outcome, op string, key domain.SelectionKey) (*models.TransitionResponse, error) {
	s.recorder.SelectionTransition(op, string(outcome))

	if outcome == selection.Accepted || outcome == selection.Removed {
		session.Selection = next
		if err := s.save(ctx, session); err != nil {
			return nil, err
		}
	}

	s.logger.Info("%s: session=%s court=%d start=%s outcome=%s selected=%d",
		op, session.ID, key.CourtID, key.StartTime, outcome, len(session.Selection.Times))

	return &models.TransitionResponse{
		Accepted: outcome == selection.Accepted || outcome == selection.Removed,
		Outcome:  string(outcome),
		Session:  s.toResponse(session),
	}, nil
}

func (s *Service) load(ctx context.Context, id string) (*domain.BookingSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed session id", ErrInvalidInput)
	}

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("session=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("failed to load session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}
	return session, nil
}

func (s *Service) save(ctx context.Context, session *domain.BookingSession) error {
	session.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, session, s.ttl); err != nil {
		s.logger.Error("failed to save session=%s: %v", session.ID, err)
		return fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}
	return nil
}

// parseDate пустая строка = сегодня; прошедшие даты не принимаются
func (s *Service) parseDate(raw string) (time.Time, error) {
	today := dateOnly(s.clock.Now().In(s.loc))
	if strings.TrimSpace(raw) == "" {
		return today, nil
	}

	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(raw), s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, raw)
	}
	if date.Before(today) {
		return time.Time{}, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, raw)
	}
	return date, nil
}

func (s *Service) toResponse(session *domain.BookingSession) *models.SessionResponse {
	months := session.RecurrenceMonths()
	quote := pricing.Quote(session.SelectedSlots(), session.Date, session.Recurring, months)
	return models.FromDomainSession(
		session,
		quote,
		recurrence.Plan(session.Date, months),
		recurrence.Occurrences(session.Date, months),
	)
}

func slotKey(req *models.SlotRequest) (domain.SelectionKey, error) {
	if req.CourtID <= 0 {
		return domain.SelectionKey{}, fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return domain.SelectionKey{}, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	return domain.SelectionKey{CourtID: req.CourtID, StartTime: start}, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
