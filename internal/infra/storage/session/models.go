package session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// sessionRecord представление сессии в redis
type sessionRecord struct {
	ID        string                 `json:"id"`
	ArenaID   int64                  `json:"arena_id"`
	Sport     string                 `json:"sport"`
	Date      string                 `json:"date"`
	Recurring bool                   `json:"recurring"`
	Period    *domain.FixedPeriod    `json:"period,omitempty"`
	Selection selectionRecord        `json:"selection"`
	Listing   map[int64][]slotRecord `json:"listing,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type selectionRecord struct {
	CourtID         int64              `json:"court_id,omitempty"`
	DurationMinutes int                `json:"duration_minutes,omitempty"`
	Times           []types.TimeString `json:"times,omitempty"`
}

type slotRecord struct {
	ID              string            `json:"id,omitempty"`
	StartTime       types.TimeString  `json:"start_time"`
	DurationMinutes int               `json:"duration_minutes"`
	Price           decimal.Decimal   `json:"price"`
	Status          domain.SlotStatus `json:"status"`
	Available       bool              `json:"available"`
}

// toRecord дата сессии хранится без времени, в часовом поясе loc она восстанавливается при чтении
func toRecord(s *domain.BookingSession) sessionRecord {
	rec := sessionRecord{
		ID:        s.ID,
		ArenaID:   s.ArenaID,
		Sport:     s.Sport,
		Date:      s.Date.Format(domain.DateFormat),
		Recurring: s.Recurring,
		Period:    s.Period,
		Selection: selectionRecord{
			CourtID:         s.Selection.CourtID,
			DurationMinutes: s.Selection.DurationMinutes,
			Times:           s.Selection.Times,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if len(s.Listing) > 0 {
		rec.Listing = make(map[int64][]slotRecord, len(s.Listing))
		for courtID, slots := range s.Listing {
			list := make([]slotRecord, len(slots))
			for i, slot := range slots {
				list[i] = slotRecord{
					ID:              slot.ID,
					StartTime:       slot.StartTime,
					DurationMinutes: slot.DurationMinutes,
					Price:           slot.Price,
					Status:          slot.Status,
					Available:       slot.Available,
				}
			}
			rec.Listing[courtID] = list
		}
	}

	return rec
}

func fromRecord(rec sessionRecord, loc *time.Location) (*domain.BookingSession, error) {
	date, err := time.ParseInLocation(domain.DateFormat, rec.Date, loc)
	if err != nil {
		return nil, err
	}

	s := &domain.BookingSession{
		ID:        rec.ID,
		ArenaID:   rec.ArenaID,
		Sport:     rec.Sport,
		Date:      date,
		Recurring: rec.Recurring,
		Period:    rec.Period,
		Selection: domain.Selection{
			CourtID:         rec.Selection.CourtID,
			DurationMinutes: rec.Selection.DurationMinutes,
			Times:           rec.Selection.Times,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if s.Selection.IsEmpty() {
		s.Selection = domain.Selection{}
	}

	if len(rec.Listing) > 0 {
		s.Listing = make(map[int64][]domain.Slot, len(rec.Listing))
		for courtID, list := range rec.Listing {
			slots := make([]domain.Slot, len(list))
			for i, r := range list {
				slots[i] = domain.Slot{
					ID:              r.ID,
					CourtID:         courtID,
					Date:            date,
					StartTime:       r.StartTime,
					DurationMinutes: r.DurationMinutes,
					Price:           r.Price,
					Status:          r.Status,
					Available:       r.Available,
				}
			}
			s.Listing[courtID] = slots
		}
	}

	return s, nil
}
