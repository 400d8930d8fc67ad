package deselect_slot

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

type SessionService interface {
	DeselectSlot(ctx context.Context, id string, req *models.SlotRequest) (*models.TransitionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
