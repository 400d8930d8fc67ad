package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ArenaID <= 0 {
		return fmt.Errorf("%w: arenaID must be positive", ErrInvalidInput)
	}

	if req.SessionID != "" {
		if _, err := uuid.Parse(req.SessionID); err != nil {
			return fmt.Errorf("%w: malformed sessionId", ErrInvalidInput)
		}
	}

	if strings.TrimSpace(req.Date) == "" && req.SessionID == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// parseDate разбирает дату запроса в часовом поясе площадок
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, raw)
	}
	return date, nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date time.Time, now time.Time) error {
	y, m, d := now.In(date.Location()).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	if date.Before(today) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}
	return nil
}
