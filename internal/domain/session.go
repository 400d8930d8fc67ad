package domain

import "time"

// BookingSession состояние бронирования одного пользователя:
// дата, режим фиксированного бронирования, выбор слотов и последний показанный список слотов
type BookingSession struct {
	ID        string
	ArenaID   int64
	Sport     string
	Date      time.Time
	Recurring bool
	Period    *FixedPeriod

	Selection Selection

	// Listing слоты по кортам, показанные пользователю на Date
	// Цены выбора берутся отсюда и не меняются до следующего запроса слотов
	Listing map[int64][]Slot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecurrenceMonths возвращает горизонт повторения в месяцах
// 0, если фиксированный режим выключен или период не выбран
func (s *BookingSession) RecurrenceMonths() int {
	if !s.Recurring || s.Period == nil {
		return 0
	}
	return s.Period.Months()
}

// FindSlot ищет слот в последнем показанном списке
func (s *BookingSession) FindSlot(key SelectionKey) (Slot, bool) {
	for _, slot := range s.Listing[key.CourtID] {
		if slot.StartTime == key.StartTime {
			return slot, true
		}
	}
	return Slot{}, false
}

// SelectedSlots возвращает слоты текущего выбора из последнего списка
// Ключи, которых нет в списке, пропускаются
func (s *BookingSession) SelectedSlots() []Slot {
	slots := make([]Slot, 0, len(s.Selection.Times))
	for _, key := range s.Selection.Keys() {
		if slot, ok := s.FindSlot(key); ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

// ResetSelection очищает выбор
func (s *BookingSession) ResetSelection() {
	s.Selection = Selection{}
}
