package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/integrations/bookingapi"
)

// SessionRepository интерфейс хранилища сессий бронирования
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Save(ctx context.Context, s *domain.BookingSession, ttl time.Duration) error
}

// BookingAPIClient интерфейс клиента API бронирований
type BookingAPIClient interface {
	CreateBooking(ctx context.Context, payload domain.BookingPayload) (*bookingapi.BookingCreated, error)
}

// MetricsRecorder интерфейс записи доменных метрик
type MetricsRecorder interface {
	BookingSubmitted(mode, result string)
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
