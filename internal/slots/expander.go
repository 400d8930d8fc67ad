// Package slots разворачивает часы работы кортов в конкретные слоты на дату,
// отбрасывает прошедшие слоты и форматирует подписи интервалов.
package slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Expand разворачивает одно окно работы в список времен начала слотов на [start, end)
// с шагом durationMinutes.
//
// "00:00" в качестве конца окна означает конец суток. Окна с start == end,
// некорректное время и неположительная длительность дают пустой результат.
func Expand(interval domain.OpeningInterval, durationMinutes int) []types.TimeString {
	if durationMinutes <= 0 {
		return nil
	}

	start, err := interval.Start.Minutes()
	if err != nil {
		return nil
	}
	end, err := interval.End.EndMinutes()
	if err != nil {
		return nil
	}

	if start >= end {
		return nil
	}

	times := make([]types.TimeString, 0, (end-start+durationMinutes-1)/durationMinutes)
	for t := start; t < end; t += durationMinutes {
		times = append(times, types.FromMinutes(t))
	}

	return times
}

// ExpandDay разворачивает все окна дня недели даты в слоты корта
// Возвращает слоты, отсортированные по времени начала, и количество некорректных окон
// Пересекающиеся окна разворачиваются независимо, пересечения не исправляются
func ExpandDay(schedule domain.WeeklySchedule, court domain.Court, date time.Time) ([]domain.Slot, int) {
	day := dateOnly(date)
	duration := court.SlotMinutes()

	result := make([]domain.Slot, 0)
	malformed := 0

	for _, interval := range schedule.ForDate(day) {
		if interval.Start.Validate() != nil || interval.End.Validate() != nil {
			malformed++
			continue
		}

		for _, start := range Expand(interval, duration) {
			result = append(result, domain.Slot{
				CourtID:         court.ID,
				Date:            day,
				StartTime:       start,
				DurationMinutes: duration,
				Price:           interval.Price,
				Status:          interval.Status,
				Available:       interval.Status.IsAvailable(),
			})
		}
	}

	sortByStart(result)
	return result, malformed
}

// sortByStart сортирует слоты по времени начала, сохраняя порядок равных
func sortByStart(s []domain.Slot) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].StartTime.IsBefore(s[j].StartTime)
	})
}

// dateOnly обнуляет время, сохраняя локацию
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
