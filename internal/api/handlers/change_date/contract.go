package change_date

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

type SessionService interface {
	ChangeDate(ctx context.Context, id string, req *models.ChangeDateRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
