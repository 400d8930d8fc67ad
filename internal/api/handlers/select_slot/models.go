package select_slot

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
)

// Режимы клика по слоту
const (
	ModeSelect = "select"
	ModeToggle = "toggle"
)

// SelectSlotRequest HTTP модель клика по слоту
type SelectSlotRequest struct {
	CourtID   int64  `json:"courtId"`
	StartTime string `json:"startTime"`
	Mode      string `json:"mode,omitempty"` // select (по умолчанию) или toggle
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SelectSlotRequest) ToServiceRequest() (*models.SlotRequest, string, error) {
	mode := r.Mode
	if mode == "" {
		mode = ModeSelect
	}
	if mode != ModeSelect && mode != ModeToggle {
		return nil, "", fmt.Errorf("unknown mode %q", r.Mode)
	}

	return &models.SlotRequest{
		CourtID:   r.CourtID,
		StartTime: r.StartTime,
	}, mode, nil
}
