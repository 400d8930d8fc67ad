package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/pricing"
	"github.com/m04kA/SMC-CourtBooking/internal/slots"
)

// Request модели

// StartRequest запрос на создание сессии бронирования
type StartRequest struct {
	ArenaID int64  `json:"arenaId"`
	Date    string `json:"date"` // "2025-09-01", пусто = сегодня
	Sport   string `json:"sport"`
}

// ChangeDateRequest запрос на смену даты
type ChangeDateRequest struct {
	Date string `json:"date"`
}

// SetRecurrenceRequest запрос на включение/выключение фиксированного бронирования
type SetRecurrenceRequest struct {
	Enabled bool    `json:"enabled"`
	Period  *string `json:"period,omitempty"` // UM_MES, TRES_MESES, SEIS_MESES
}

// SlotRequest клик по слоту
type SlotRequest struct {
	CourtID   int64  `json:"courtId"`
	StartTime string `json:"startTime"`
}

// Response модели

// SessionResponse состояние сессии бронирования
type SessionResponse struct {
	ID        string             `json:"id"`
	ArenaID   int64              `json:"arenaId"`
	Sport     string             `json:"sport,omitempty"`
	Date      string             `json:"date"`
	Recurring bool               `json:"recurring"`
	Period    *string            `json:"period,omitempty"`
	Selection *SelectionResponse `json:"selection,omitempty"`
	Quote     QuoteResponse      `json:"quote"`
}

// SelectionResponse выбранный блок слотов
type SelectionResponse struct {
	CourtID         int64    `json:"courtId"`
	Times           []string `json:"times"`
	DurationMinutes int      `json:"durationMinutes"`
	Label           string   `json:"label"` // "09:00 às 10:30"
}

// QuoteResponse стоимость выбора
type QuoteResponse struct {
	SlotCount           int             `json:"slotCount"`
	BasePrice           decimal.Decimal `json:"basePrice"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	BasePriceFormatted  string          `json:"basePriceFormatted"`  // "R$ 250,00"
	TotalPriceFormatted string          `json:"totalPriceFormatted"` // "R$ 3.250,00"
	Recurring           bool            `json:"recurring"`
	Weekday             string          `json:"weekday,omitempty"`
	OccurrenceCount     int             `json:"occurrenceCount,omitempty"`
	LastOccurrence      *string         `json:"lastOccurrence,omitempty"`
	Occurrences         []string        `json:"occurrences,omitempty"`
}

// TransitionResponse результат клика по слоту
// Accepted = false для отклоненных и пустых переходов, это не ошибка
type TransitionResponse struct {
	Accepted bool             `json:"accepted"`
	Outcome  string           `json:"outcome"`
	Session  *SessionResponse `json:"session"`
}

// FromDomainSession конвертирует сессию и ее расчет стоимости в ответ
func FromDomainSession(s *domain.BookingSession, quote domain.Quote, plan domain.RecurrencePlan, occurrences []time.Time) *SessionResponse {
	resp := &SessionResponse{
		ID:        s.ID,
		ArenaID:   s.ArenaID,
		Sport:     s.Sport,
		Date:      s.Date.Format(domain.DateFormat),
		Recurring: s.Recurring,
		Quote:     FromDomainQuote(quote, plan, occurrences),
	}

	if s.Period != nil {
		p := string(*s.Period)
		resp.Period = &p
	}

	if !s.Selection.IsEmpty() {
		times := make([]string, len(s.Selection.Times))
		for i, t := range s.Selection.Times {
			times[i] = t.String()
		}
		resp.Selection = &SelectionResponse{
			CourtID:         s.Selection.CourtID,
			Times:           times,
			DurationMinutes: s.Selection.DurationMinutes,
			Label:           slots.RangeLabel(s.Selection),
		}
	}

	return resp
}

// FromDomainQuote конвертирует расчет стоимости в ответ
func FromDomainQuote(q domain.Quote, plan domain.RecurrencePlan, occurrences []time.Time) QuoteResponse {
	resp := QuoteResponse{
		SlotCount:           q.SlotCount,
		BasePrice:           q.BasePrice,
		TotalPrice:          q.TotalPrice,
		BasePriceFormatted:  pricing.Format(q.BasePrice),
		TotalPriceFormatted: pricing.Format(q.TotalPrice),
		Recurring:           q.Recurring,
	}

	if !q.Recurring {
		return resp
	}

	resp.Weekday = plan.Weekday.String()
	resp.OccurrenceCount = q.OccurrenceCount
	if q.LastOccurrence != nil {
		last := q.LastOccurrence.Format(domain.DateFormat)
		resp.LastOccurrence = &last
	}
	resp.Occurrences = make([]string, len(occurrences))
	for i, d := range occurrences {
		resp.Occurrences[i] = d.Format(domain.DateFormat)
	}

	return resp
}
