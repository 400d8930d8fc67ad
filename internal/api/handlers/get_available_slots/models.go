package get_available_slots

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/pricing"
	getAvailableSlots "github.com/m04kA/SMC-CourtBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ArenaID int64           `json:"arenaId"`
	Date    string          `json:"date"`
	Courts  []CourtResponse `json:"courts"`
}

// CourtResponse слоты корта
type CourtResponse struct {
	CourtID         int64          `json:"courtId"`
	Name            string         `json:"name"`
	DurationMinutes int            `json:"durationMinutes"`
	Source          string         `json:"source"`
	Degraded        bool           `json:"degraded,omitempty"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse модель временного слота
type SlotResponse struct {
	ID              string          `json:"id,omitempty"`
	StartTime       string          `json:"startTime"`
	Label           string          `json:"label"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	PriceFormatted  string          `json:"priceFormatted"`
	Status          string          `json:"status"`
	Available       bool            `json:"available"`
	Selected        bool            `json:"selected"`
	Selectable      bool            `json:"selectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	courts := make([]CourtResponse, len(resp.Courts))
	for i, c := range resp.Courts {
		slots := make([]SlotResponse, len(c.Slots))
		for j, s := range c.Slots {
			slots[j] = SlotResponse{
				ID:              s.ID,
				StartTime:       s.StartTime.String(),
				Label:           s.Label,
				DurationMinutes: s.DurationMinutes,
				Price:           s.Price,
				PriceFormatted:  pricing.Format(s.Price),
				Status:          string(s.Status),
				Available:       s.Available,
				Selected:        s.Selected,
				Selectable:      s.Selectable,
			}
		}
		courts[i] = CourtResponse{
			CourtID:         c.CourtID,
			Name:            c.Name,
			DurationMinutes: c.DurationMinutes,
			Source:          c.Source,
			Degraded:        c.Degraded,
			Slots:           slots,
		}
	}

	return &AvailableSlotsResponse{
		ArenaID: resp.ArenaID,
		Date:    resp.Date.Format(domain.DateFormat),
		Courts:  courts,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(arenaID int64, date, sessionID string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ArenaID:   arenaID,
		Date:      date,
		SessionID: sessionID,
	}
}
