package domain

// Court корт площадки (арены)
type Court struct {
	ID           int64
	ArenaID      int64
	Name         string
	SlotDuration SlotDuration
	// HasSchedule true, если у корта есть недельное расписание в БД
	// Иначе слоты берутся готовыми из API бронирований
	HasSchedule bool
}

// SlotMinutes возвращает длительность слота корта в минутах
// Для некорректной длительности используется значение по умолчанию
func (c *Court) SlotMinutes() int {
	if c.SlotDuration.IsValid() {
		return c.SlotDuration.Minutes()
	}
	return DefaultSlotDuration.Minutes()
}
