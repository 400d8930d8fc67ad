package slots

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/pricing"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// FromRecords приводит готовые слоты API бронирований к domain.Slot
//
// Запись с некорректным временем начала пропускается. Некорректная цена дает 0,
// неизвестный статус - недоступный слот. Каждый такой случай увеличивает malformed.
func FromRecords(court domain.Court, date time.Time, records []domain.SlotRecord) ([]domain.Slot, int) {
	day := dateOnly(date)
	result := make([]domain.Slot, 0, len(records))
	malformed := 0

	for _, rec := range records {
		start, err := types.NewTimeStringFromString(rec.HorarioInicio)
		if err != nil {
			malformed++
			continue
		}

		price, err := pricing.ParsePrice(rec.Valor)
		if err != nil {
			price = decimal.Zero
			malformed++
		}

		status, ok := domain.ParseSlotStatus(rec.StatusDisponibilidade)
		if !ok {
			malformed++
		}

		result = append(result, domain.Slot{
			ID:              rec.ID,
			CourtID:         court.ID,
			Date:            day,
			StartTime:       start,
			DurationMinutes: recordDuration(court, start, rec.HorarioFim),
			Price:           price,
			Status:          status,
			Available:       status.IsAvailable(),
		})
	}

	sortByStart(result)
	return result, malformed
}

// recordDuration длительность слота: по настройке корта,
// а если она не задана - по разнице horarioFim и horarioInicio
func recordDuration(court domain.Court, start types.TimeString, rawEnd string) int {
	if court.SlotDuration.IsValid() {
		return court.SlotDuration.Minutes()
	}

	end, err := types.NewTimeStringFromString(rawEnd)
	if err != nil {
		return court.SlotMinutes()
	}
	s, _ := start.Minutes()
	e, _ := end.EndMinutes()
	if e <= s {
		return court.SlotMinutes()
	}
	return e - s
}
