package get_quote

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

type SessionService interface {
	Quote(ctx context.Context, id string) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
