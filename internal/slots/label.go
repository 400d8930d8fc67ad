package slots

import (
	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Label возвращает подпись интервала слота "HH:MM às HH:MM"
// Конец считается по модулю 24 часов: 23:30 + 60 минут = "23:30 às 00:30"
func Label(start types.TimeString, durationMinutes int) string {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return ""
	}
	return start.String() + domain.LabelSeparator + end.String()
}

// RangeLabel подпись всего выбранного блока: от первого слота до конца последнего
func RangeLabel(sel domain.Selection) string {
	if sel.IsEmpty() {
		return ""
	}
	first := sel.Times[0]
	last := sel.Times[len(sel.Times)-1]

	end, err := last.AddMinutes(sel.DurationMinutes)
	if err != nil {
		return ""
	}
	return first.String() + domain.LabelSeparator + end.String()
}
