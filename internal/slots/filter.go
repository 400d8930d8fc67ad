package slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// FilterPast удаляет слоты, у которых дата + время начала строго раньше now
// Слоты удаляются полностью, а не помечаются недоступными
func FilterPast(slots []domain.Slot, now time.Time) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))

	for _, s := range slots {
		start, err := s.StartTime.OnDate(s.Date)
		if err != nil {
			continue
		}
		if start.Before(now) {
			continue
		}
		result = append(result, s)
	}

	return result
}
