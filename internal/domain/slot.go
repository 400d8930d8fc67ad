package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// SlotStatus статус доступности слота (statusDisponibilidade)
type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "DISPONIVEL"
	SlotStatusUnavailable SlotStatus = "INDISPONIVEL"
	SlotStatusMaintenance SlotStatus = "MANUTENCAO"
)

// ParseSlotStatus разбирает статус из внешних данных
// Неизвестные значения трактуются как недоступность, второй результат = false
func ParseSlotStatus(s string) (SlotStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DISPONIVEL", "AVAILABLE":
		return SlotStatusAvailable, true
	case "INDISPONIVEL", "UNAVAILABLE", "OCUPADO":
		return SlotStatusUnavailable, true
	case "MANUTENCAO", "MAINTENANCE":
		return SlotStatusMaintenance, true
	default:
		return SlotStatusUnavailable, false
	}
}

// IsAvailable returns true if the status allows booking
func (s SlotStatus) IsAvailable() bool {
	return s == SlotStatusAvailable
}

// SlotDuration длительность слота корта
type SlotDuration string

const (
	SlotDurationHalfHour        SlotDuration = "MEIA_HORA"
	SlotDurationOneHour         SlotDuration = "UMA_HORA"
	SlotDurationOneAndHalfHours SlotDuration = "UMA_HORA_E_MEIA"
	SlotDurationTwoHours        SlotDuration = "DUAS_HORAS"
)

var slotDurationMinutes = map[SlotDuration]int{
	SlotDurationHalfHour:        30,
	SlotDurationOneHour:         60,
	SlotDurationOneAndHalfHours: 90,
	SlotDurationTwoHours:        120,
}

// ParseSlotDuration разбирает длительность слота
func ParseSlotDuration(s string) (SlotDuration, error) {
	d := SlotDuration(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown slot duration %q", s)
	}
	return d, nil
}

// Minutes возвращает длительность в минутах, 0 для неизвестного значения
func (d SlotDuration) Minutes() int {
	return slotDurationMinutes[d]
}

// IsValid returns true for a known duration
func (d SlotDuration) IsValid() bool {
	_, ok := slotDurationMinutes[d]
	return ok
}

// OpeningInterval окно работы корта внутри дня недели
type OpeningInterval struct {
	Start  types.TimeString
	End    types.TimeString // "00:00" означает конец суток
	Price  decimal.Decimal  // цена одного слота внутри окна
	Status SlotStatus
}

// WeeklySchedule расписание корта по дням недели (time.Sunday = 0)
// Интервалы одного дня не обязаны быть отсортированы или непересекающимися
type WeeklySchedule map[time.Weekday][]OpeningInterval

// ForDate возвращает интервалы для дня недели указанной даты
func (w WeeklySchedule) ForDate(date time.Time) []OpeningInterval {
	return w[date.Weekday()]
}

// Slot конкретный слот корта на дату
// Производится заново на каждый запрос (корт, дата) и после этого не меняется
type Slot struct {
	ID              string // идентификатор слота в API бронирований (пустой для слотов из расписания)
	CourtID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Price           decimal.Decimal
	Status          SlotStatus
	Available       bool
}

// Key возвращает ключ выбора слота
func (s Slot) Key() SelectionKey {
	return SelectionKey{CourtID: s.CourtID, StartTime: s.StartTime}
}

// IsSelectable returns true if the slot can start or extend a selection
func (s Slot) IsSelectable() bool {
	return s.Available && s.Status != SlotStatusMaintenance
}

// SlotRecord готовый слот в формате API бронирований
type SlotRecord struct {
	ID                    string
	HorarioInicio         string
	HorarioFim            string
	Valor                 string
	StatusDisponibilidade string
}
