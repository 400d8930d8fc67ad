// Package recurrence считает даты фиксированных (еженедельных) бронирований.
package recurrence

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Calculate перечисляет повторения дня недели anchor начиная с самой даты anchor
// с шагом 7 дней, пока дата строго раньше anchor + months календарных месяцев.
//
// months == 0 (и отрицательные значения) дает {0, anchor}.
func Calculate(anchor time.Time, months int) domain.Recurrence {
	start := dateOnly(anchor)
	if months <= 0 {
		return domain.Recurrence{OccurrenceCount: 0, LastOccurrenceDate: start}
	}

	end := start.AddDate(0, months, 0)

	count := 0
	last := start
	for d := start; d.Before(end); d = d.AddDate(0, 0, 7) {
		count++
		last = d
	}

	return domain.Recurrence{OccurrenceCount: count, LastOccurrenceDate: last}
}

// Occurrences возвращает все даты повторений
func Occurrences(anchor time.Time, months int) []time.Time {
	start := dateOnly(anchor)
	if months <= 0 {
		return nil
	}

	end := start.AddDate(0, months, 0)
	dates := make([]time.Time, 0, months*5)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}

// Plan строит план повторения от даты первого занятия
func Plan(anchor time.Time, months int) domain.RecurrencePlan {
	start := dateOnly(anchor)
	return domain.RecurrencePlan{
		AnchorDate: start,
		Weekday:    start.Weekday(),
		Months:     months,
	}
}

// dateOnly отбрасывает время, шаг по календарным дням не зависит от перевода часов
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
