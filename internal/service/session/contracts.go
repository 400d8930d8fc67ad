package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// SessionRepository интерфейс хранилища сессий бронирования
type SessionRepository interface {
	Save(ctx context.Context, s *domain.BookingSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Delete(ctx context.Context, id string) error
}

// MetricsRecorder интерфейс записи доменных метрик
type MetricsRecorder interface {
	SelectionTransition(operation, outcome string)
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
