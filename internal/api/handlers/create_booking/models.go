package create_booking

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/pricing"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Sport   string `json:"sport,omitempty"`
	Players *int   `json:"players,omitempty"`
	Public  bool   `json:"public"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID           string          `json:"bookingId"`
	Status              string          `json:"status,omitempty"`
	CourtID             int64           `json:"courtId"`
	Date                string          `json:"date"`
	Times               []string        `json:"times"`
	Label               string          `json:"label"`
	Recurring           bool            `json:"recurring"`
	Period              *string         `json:"period,omitempty"`
	OccurrenceCount     int             `json:"occurrenceCount,omitempty"`
	LastOccurrence      *string         `json:"lastOccurrence,omitempty"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	TotalPriceFormatted string          `json:"totalPriceFormatted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(sessionID string) *createBooking.Request {
	return &createBooking.Request{
		SessionID: sessionID,
		Sport:     r.Sport,
		Players:   r.Players,
		Public:    r.Public,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}

	out := &BookingResponse{
		BookingID:           resp.BookingID,
		Status:              resp.Status,
		CourtID:             resp.CourtID,
		Date:                resp.Date.Format(domain.DateFormat),
		Times:               times,
		Label:               resp.Label,
		Recurring:           resp.Recurring,
		OccurrenceCount:     resp.OccurrenceCount,
		TotalPrice:          resp.TotalPrice,
		TotalPriceFormatted: pricing.Format(resp.TotalPrice),
	}
	if resp.Period != nil {
		period := string(*resp.Period)
		out.Period = &period
	}
	if resp.LastOccurrence != nil {
		last := resp.LastOccurrence.Format(domain.DateFormat)
		out.LastOccurrence = &last
	}
	return out
}
