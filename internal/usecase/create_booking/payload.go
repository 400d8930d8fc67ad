package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/selection"
)

// buildPayload собирает тело запроса создания бронирования из сессии
//
// periodoFixo передается только в фиксированном режиме с выбранным периодом,
// isFixo совпадает с этим условием.
func buildPayload(session *domain.BookingSession, sport string, players int, public bool) (domain.BookingPayload, error) {
	sel := session.Selection
	if sel.IsEmpty() {
		return domain.BookingPayload{}, ErrEmptySelection
	}
	if err := selection.Validate(sel); err != nil {
		return domain.BookingPayload{}, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	ids := make([]string, 0, len(sel.Times))
	for _, key := range sel.Keys() {
		slot, ok := session.FindSlot(key)
		if !ok {
			return domain.BookingPayload{}, fmt.Errorf("%w: court=%d start=%s", ErrSlotNotListed, key.CourtID, key.StartTime)
		}
		if slot.ID == "" {
			return domain.BookingPayload{}, fmt.Errorf("%w: court=%d start=%s", ErrMissingSlotID, key.CourtID, key.StartTime)
		}
		ids = append(ids, slot.ID)
	}

	payload := domain.BookingPayload{
		QuadraID:                   sel.CourtID,
		DataAgendamento:            session.Date.Format(domain.DateFormat),
		SlotHorarioIDs:             ids,
		Esporte:                    sport,
		NumeroJogadoresNecessarios: players,
		IsPublico:                  public,
	}

	if session.RecurrenceMonths() > 0 {
		period := *session.Period
		payload.PeriodoFixo = &period
		payload.IsFixo = true
	}

	return payload, nil
}
