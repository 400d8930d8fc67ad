package select_slot

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

type SessionService interface {
	SelectSlot(ctx context.Context, id string, req *models.SlotRequest) (*models.TransitionResponse, error)
	ToggleSlot(ctx context.Context, id string, req *models.SlotRequest) (*models.TransitionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
