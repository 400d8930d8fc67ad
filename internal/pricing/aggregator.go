package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/recurrence"
)

// Sum возвращает сумму цен слотов
func Sum(slots []domain.Slot) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slots {
		total = total.Add(s.Price)
	}
	return total
}

// Quote считает стоимость выбора с нуля по текущему состоянию
//
// Без фиксированного режима (или при months == 0) итог равен сумме цен слотов.
// В фиксированном режиме итог = сумма * количество повторений дня недели anchor
// до anchor + months календарных месяцев.
func Quote(slots []domain.Slot, anchor time.Time, recurring bool, months int) domain.Quote {
	base := Sum(slots)

	q := domain.Quote{
		SlotCount:  len(slots),
		BasePrice:  base,
		TotalPrice: base,
	}

	if !recurring || months <= 0 {
		return q
	}

	occ := recurrence.Calculate(anchor, months)
	last := occ.LastOccurrenceDate

	q.Recurring = true
	q.OccurrenceCount = occ.OccurrenceCount
	q.LastOccurrence = &last
	q.TotalPrice = Multiply(base, occ.OccurrenceCount)

	return q
}

// Multiply умножает базовую цену на количество повторений
func Multiply(base decimal.Decimal, occurrences int) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(int64(occurrences)))
}
