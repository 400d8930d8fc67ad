package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// ScheduleRepository интерфейс репозитория кортов и расписаний
type ScheduleRepository interface {
	ListCourtsByArena(ctx context.Context, arenaID int64) ([]domain.Court, error)
	GetWeeklySchedule(ctx context.Context, courtID int64) (domain.WeeklySchedule, error)
}

// BookingAPIClient интерфейс клиента API бронирований
type BookingAPIClient interface {
	GetCourtSlots(ctx context.Context, courtID int64, date time.Time) ([]domain.SlotRecord, error)
}

// SessionRepository интерфейс хранилища сессий бронирования
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Save(ctx context.Context, s *domain.BookingSession, ttl time.Duration) error
}

// MetricsRecorder интерфейс записи доменных метрик
type MetricsRecorder interface {
	SlotsListed(source string, count int)
	MalformedRecord(source string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
