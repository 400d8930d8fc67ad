package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FixedPeriod горизонт фиксированного (повторяющегося) бронирования
type FixedPeriod string

const (
	FixedPeriodOneMonth    FixedPeriod = "UM_MES"
	FixedPeriodThreeMonths FixedPeriod = "TRES_MESES"
	FixedPeriodSixMonths   FixedPeriod = "SEIS_MESES"
)

var fixedPeriodMonths = map[FixedPeriod]int{
	FixedPeriodOneMonth:    1,
	FixedPeriodThreeMonths: 3,
	FixedPeriodSixMonths:   6,
}

// ParseFixedPeriod разбирает период фиксированного бронирования
func ParseFixedPeriod(s string) (FixedPeriod, error) {
	p := FixedPeriod(s)
	if _, ok := fixedPeriodMonths[p]; !ok {
		return "", fmt.Errorf("unknown fixed period %q", s)
	}
	return p, nil
}

// Months возвращает количество месяцев, 0 для неизвестного значения
func (p FixedPeriod) Months() int {
	return fixedPeriodMonths[p]
}

// RecurrencePlan план повторяющегося бронирования
type RecurrencePlan struct {
	AnchorDate time.Time // первое занятие
	Weekday    time.Weekday
	Months     int // 0, 1, 3 или 6
}

// Recurrence результат расчета повторений
type Recurrence struct {
	OccurrenceCount    int
	LastOccurrenceDate time.Time
}

// Quote итоговая стоимость текущего выбора
type Quote struct {
	SlotCount       int
	BasePrice       decimal.Decimal // сумма цен слотов выбора
	TotalPrice      decimal.Decimal // BasePrice или BasePrice * OccurrenceCount
	Recurring       bool            // true только при фиксированном режиме и Months > 0
	OccurrenceCount int
	LastOccurrence  *time.Time
}

// BookingPayload тело запроса создания бронирования во внешнем API
type BookingPayload struct {
	QuadraID                   int64        `json:"quadraId"`
	DataAgendamento            string       `json:"dataAgendamento"`
	SlotHorarioIDs             []string     `json:"slotHorarioIds"`
	Esporte                    string       `json:"esporte"`
	PeriodoFixo                *FixedPeriod `json:"periodoFixo,omitempty"`
	NumeroJogadoresNecessarios int          `json:"numeroJogadoresNecessarios"`
	IsFixo                     bool         `json:"isFixo"`
	IsPublico                  bool         `json:"isPublico"`
}
